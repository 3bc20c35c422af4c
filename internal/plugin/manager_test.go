package plugin

import (
	"errors"
	"testing"
)

type fakePlugin struct {
	name     string
	initErr  error
	inits    int
	shutdown int
}

func (p *fakePlugin) Name() string { return p.name }

func (p *fakePlugin) Initialize(api EditorAPI) error {
	p.inits++
	return p.initErr
}

func (p *fakePlugin) Shutdown() error {
	p.shutdown++
	return nil
}

func TestRegister(t *testing.T) {
	m := NewManager()
	if err := m.Register(&fakePlugin{name: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := m.Register(&fakePlugin{name: "a"}); err == nil {
		t.Error("duplicate name accepted")
	}
	if err := m.Register(&fakePlugin{}); err == nil {
		t.Error("empty name accepted")
	}
	if _, ok := m.GetPlugin("a"); !ok {
		t.Error("GetPlugin missed registered plugin")
	}
}

func TestLifecycleContinuesPastFailures(t *testing.T) {
	m := NewManager()
	bad := &fakePlugin{name: "bad", initErr: errors.New("boom")}
	good := &fakePlugin{name: "good"}
	_ = m.Register(bad)
	_ = m.Register(good)

	m.InitializePlugins(nil)
	if bad.inits != 1 || good.inits != 1 {
		t.Errorf("inits = %d, %d", bad.inits, good.inits)
	}
	m.ShutdownPlugins()
	if bad.shutdown != 1 || good.shutdown != 1 {
		t.Errorf("shutdowns = %d, %d", bad.shutdown, good.shutdown)
	}
}
