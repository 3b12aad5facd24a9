package main

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestShortAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	lvl := new(slog.LevelVar)
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: lvl, ReplaceAttr: shortAttrs}))
	log.Info("read", "file", "a.serp")
	log.Warn("lossy", "type", "Tuple")
	lvl.Set(slog.LevelError)
	log.Warn("dropped")
	want := "msg=read file=a.serp\nlevel=WARN msg=lossy type=Tuple\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
