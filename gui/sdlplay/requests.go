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

package sdlplay

import (
	"github.com/jetsetilly/shapemotion/gui"
	"github.com/jetsetilly/shapemotion/userinput"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements the gui.GUI interface. The request is serviced by
// Service() on the main thread and so SetFeature() must not be called from
// the main thread.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// featureRequests have been handed over to the featureReq channel. we service
// any requests on that channel here.
func (scr *SdlPlay) serviceFeatureRequest(request featureRequest) {
	var err error

	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = gui.ArgError(request.request, r)
		}
		scr.featureErr <- err
	}()

	switch request.request {
	case gui.ReqSetEventChan:
		scr.events = request.args[0].(chan userinput.Event)

	case gui.ReqState:
		scr.state = request.args[0].(gui.EmulationState)

	case gui.ReqSetVisibility:
		scr.showWindow(request.args[0].(bool))

	case gui.ReqSetScale:
		err = scr.setScaling(request.args[0].(float32))

	default:
		err = gui.Unsupported(request.request)
	}
}
