package bot

import (
	"regexp"

	"github.com/diamondburned/arikawa/v3/utils/httputil/httpdriver"
)

var webhookToken = regexp.MustCompile(`/webhooks/(\d+)/[^/]+`)

// onResponse logs every REST request's status code.
func (bot *Bot) onResponse(req httpdriver.Request, resp httpdriver.Response) error {
	method := ""

	v, ok := req.(*httpdriver.DefaultRequest)
	if ok {
		method = v.Method
		if method == "" {
			method = "GET"
		}
	}

	if resp == nil {
		return nil
	}

	if _, ok := resp.(*httpdriver.DefaultResponse); !ok {
		return nil
	}

	bot.Log.Debugf("%v %v => %v", method, webhookToken.ReplaceAllString(req.GetPath(), "/webhooks/$1/:token"), resp.GetStatus())
	return nil
}
