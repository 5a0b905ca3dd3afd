// This file is part of Shapemotion.
//
// Shapemotion is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shapemotion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shapemotion.  If not, see <https://www.gnu.org/licenses/>.

// Package userinput handles input from real hardware that the user of the
// emulator is using to control the emulated board.
//
// It can be thought of as a translation layer between the GUI implementation
// and the hardware switches package. As such, this package attempts to hide
// details of the GUI implementation while protecting the switches package
// from complication.
//
// The keyboard layout is:
//
//	Q / A        left paddle up / down (SW1 / SW2)
//	Up / Down    right paddle up / down (SW3 / SW4)
//	1 2 3 4      switches SW1 to SW4 directly
//	Escape       quit
//
// Terminals do not report key releases. For those GUIs the Controllers type
// can be configured to release a switch a short time after it was pressed.
// See Controllers.PulseDuration.
package userinput
