package server

import (
	"encoding/json"

	"github.com/pkg/errors"

	"sarfield/calculator"
	"sarfield/model"
	"sarfield/render"
)

// WSDriver 通过 websocket 把场景推送给前端渲染
// 渲染请求先记录在 Scene 中，Show 时整体编码为一条 scene 消息
type WSDriver struct {
	*render.Scene
	session string
	send    func(msg model.Msg) error
	result  *calculator.Result
}

func NewWSDriver(session string, send func(msg model.Msg) error) *WSDriver {
	d := &WSDriver{
		Scene:   render.NewScene(),
		session: session,
		send:    send,
	}
	d.Scene.ShowHook = d.push
	return d
}

// SetResult 附带统计信息、截面和探针采样
func (d *WSDriver) SetResult(res *calculator.Result) {
	d.result = res
}

func (d *WSDriver) push(s *render.Scene) error {
	payload := buildPayload(d.session, s)
	if d.result != nil {
		if d.result.Summary.Inside > 0 {
			summary := d.result.Summary
			payload.Summary = &summary
		}
		payload.Sections = []EncodedSection{
			encodeSection(d.result.Sections.Cross),
			encodeSection(d.result.Sections.Longitudinal),
		}
		payload.Samples = encodeSamples(d.result.Samples)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "unable to encode scene")
	}
	return d.send(model.Msg{
		Type:    model.MsgScene,
		Content: string(data),
	})
}
