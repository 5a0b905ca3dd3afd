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

package gui

import "github.com/jetsetilly/shapemotion/curated"

// FeatureReq is used to request the setting of a gui attribute
// eg. changing the window scaling.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail and the GUI will return an
// error.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// the channel to which the GUI sends userinput events. a GUI will not
	// send events until this request has been made.
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan userinput.Event

	// notify GUI of emulation state.
	ReqState FeatureReq = "ReqState" // EmulationState

	// whether the gui is visible or not.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// the size of each LCD pixel in the GUI. has no effect in GUIs that cannot
	// be scaled.
	ReqSetScale FeatureReq = "ReqSetScale" // float32
)

// ArgError returns an error if a request has been made with the wrong number
// of arguments or arguments of the wrong type. Should be called from a
// deferred function in the GUI's feature request handler.
//
//	defer func() {
//		if r := recover(); r != nil {
//			err = gui.ArgError(request, r)
//		}
//	}()
func ArgError(request FeatureReq, r any) error {
	return curated.Errorf("gui: bad arguments for %v: %v", request, r)
}

// Unsupported returns the UnsupportedGuiFeature error for the request.
func Unsupported(request FeatureReq) error {
	return curated.Errorf(UnsupportedGuiFeature, request)
}
