package control

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"gopkg.in/macaron.v1"
)

// Hooks are the runner-side callbacks the HTTP surface drives. A nil hook
// turns its endpoint into a no-op that reports "unsupported".
type Hooks struct {
	Shake      func()
	SetBattery func(level int, charging bool) error
	SetFace    func(name string) error
	FaceNames  func() []string
}

// Serve blocks on macaron's classic server. Run it in its own goroutine
// next to the frame loop.
//
// GET endpoints return the current value; the same endpoint with a
// state=<val> query param sets it.
func Serve(host string, port int, ctrl *Control, hooks Hooks) {
	m := macaron.Classic()

	m.Get("/state", func() string {
		return ctrl.State()
	})

	m.Get("/var/:name", func(mctx *macaron.Context) string {
		return varHandler(mctx, ctrl, mctx.Params("name"))
	})
	m.Get("/color/:name", func(mctx *macaron.Context) string {
		return colorHandler(mctx, ctrl, mctx.Params("name"))
	})

	m.Get("/shake", func(mctx *macaron.Context) string {
		if hooks.Shake == nil {
			return "unsupported"
		}
		hooks.Shake()
		return "ok"
	})

	m.Get("/battery", func(mctx *macaron.Context) string {
		if hooks.SetBattery == nil {
			return "unsupported"
		}
		newVal := mctx.Query("state")
		if newVal == "" {
			mctx.Resp.WriteHeader(http.StatusBadRequest)
			return "state param required"
		}
		level, err := strconv.Atoi(newVal)
		if err != nil {
			mctx.Resp.WriteHeader(http.StatusBadRequest)
			return "not a number!"
		}
		charging := mctx.Query("charging") == "1"
		if err := hooks.SetBattery(level, charging); err != nil {
			mctx.Resp.WriteHeader(http.StatusInternalServerError)
			return err.Error()
		}
		return "ok"
	})

	m.Get("/faces", func(mctx *macaron.Context) string {
		if hooks.FaceNames == nil {
			return "unsupported"
		}
		return strings.Join(hooks.FaceNames(), "\n")
	})

	m.Get("/face", func(mctx *macaron.Context) string {
		if hooks.SetFace == nil {
			return "unsupported"
		}
		newVal := mctx.Query("state")
		if newVal == "" {
			mctx.Resp.WriteHeader(http.StatusBadRequest)
			return "state param required"
		}
		if err := hooks.SetFace(newVal); err != nil {
			mctx.Resp.WriteHeader(http.StatusBadRequest)
			return err.Error()
		}
		return "ok"
	})

	m.Run(host, port)
}

// Generic handler for getting/setting vars.
// GET retrieves the var; GET with query param state=<newVal> sets it,
// scaled by 1000 so callers can stay integer.
func varHandler(mctx *macaron.Context, ctrl *Control, varName string) string {
	mctx.Header().Set("Content-Type", "application/json")
	newValString := mctx.Query("state")
	if newValString == "" {
		return "{\"state\": \"" + strconv.Itoa(int(ctrl.GetVar(varName)*1000.0)) + "\"}"
	}
	newVal, err := strconv.Atoi(newValString)
	if err != nil {
		mctx.Resp.WriteHeader(http.StatusBadRequest)
		return "not a number!"
	}
	ctrl.SetVar(varName, float64(newVal)/1000.0)
	log.Println(ctrl.State())
	return "{\"state\": \"" + newValString + "\"}"
}

func colorHandler(mctx *macaron.Context, ctrl *Control, varName string) string {
	mctx.Header().Set("Content-Type", "application/json")
	newVal := mctx.Query("state")
	if newVal == "" {
		return "{\"state\": \"" + ctrl.GetColorHex(varName) + "\"}"
	}
	ctrl.SetColorHex(varName, newVal)
	log.Println(ctrl.State())
	return "{\"state\": \"" + newVal + "\"}"
}
