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

// Package gui is an abstraction layer for real GUI implementations. It
// defines the Events that can be passed from the GUI to the emulation code
// and also the Requests that can be made from the emulation code to the GUI.
//
// Implementations of the GUI should also implement the lcd.FrameRenderer
// interface and optionally the hardware.AudioMixer interface.
package gui

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Sentinal error returned if GUI does no support requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)

// Stub is a GUI that supports no features. Requests for ReqState are
// accepted and ignored.
type Stub struct{}

// SetFeature implements the GUI interface.
func (Stub) SetFeature(request FeatureReq, args ...FeatureReqData) error {
	if request == ReqState {
		return nil
	}
	return Unsupported(request)
}
