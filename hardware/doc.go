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

// Package hardware is the base package for the board emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// board.
//
// The Board type is the root of the emulation and contains external references
// to all the board's sub-systems. From here the emulation can either be
// started to run continuously (with optional callback to check for continuation);
// or it can be stepped one interrupt at a time.
//
// The firmware is not part of the hardware package. It is attached to the
// board with AttachFirmware() and must implement the Firmware interface.
//
// In continuous mode the watchdog interval timer runs in its own goroutine
// and interrupts the main context, just as it does on the real board. In step
// mode the interrupt and the main context run in turn on the calling
// goroutine, which makes the emulation entirely deterministic.
package hardware
