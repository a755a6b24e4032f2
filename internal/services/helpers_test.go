package services

import (
	"context"
	"fmt"
)

// fakeGemini scripts the generation backend for service tests. Each call
// consumes the next queued reply in order.
type fakeGemini struct {
	replies []fakeReply
	calls   int
	prompts []string
}

type fakeReply struct {
	text string
	err  error
}

func scriptedGemini(replies ...fakeReply) *fakeGemini {
	return &fakeGemini{replies: replies}
}

func reply(text string) fakeReply  { return fakeReply{text: text} }
func replyErr(err error) fakeReply { return fakeReply{err: err} }

func (f *fakeGemini) GenerateText(_ context.Context, prompt string, _ GenerationConfig) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.calls >= len(f.replies) {
		return "", fmt.Errorf("unexpected generation call %d", f.calls+1)
	}
	r := f.replies[f.calls]
	f.calls++
	return r.text, r.err
}
