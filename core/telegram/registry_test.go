package telegram

import (
	"errors"
	"testing"

	"github.com/m3rciful/prayerbot/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

func noop(tele.Context) error { return nil }

func TestRegistryRegisterAndList(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "Start"})
	reg.RegisterCommand("/help", commands.Command{Handler: noop, Description: "Help", Aliases: []string{"h"}})
	reg.RegisterCommand("/debug", commands.Command{Handler: noop, Description: "Debug", Hidden: true})
	reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "Duplicate"})
	reg.RegisterCommand("pray", commands.Command{Handler: noop, Description: "No slash"})
	reg.RegisterCommand("/empty", commands.Command{Description: "No handler"})

	all := reg.ListCommands(false)
	if len(all) != 3 {
		t.Fatalf("ListCommands(false) = %d entries, want 3", len(all))
	}
	visible := reg.ListCommands(true)
	want := []string{"start", "help"}
	if len(visible) != len(want) {
		t.Fatalf("visible = %+v", visible)
	}
	for i, cmd := range visible {
		if cmd.Text != want[i] {
			t.Fatalf("visible[%d] = %q, want %q", i, cmd.Text, want[i])
		}
	}
	if reg.Commands()["/start"].Description != "Start" {
		t.Fatal("duplicate registration must not replace the first command")
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/help", commands.Command{Handler: noop, Description: "Help", Aliases: []string{"h"}})

	for _, name := range []string{"/help", "help", "/h", "h"} {
		key, _, ok := reg.LookupCommand(name)
		if !ok || key != "/help" {
			t.Fatalf("LookupCommand(%q) = %q, %v", name, key, ok)
		}
	}
	if _, _, ok := reg.LookupCommand("/nope"); ok {
		t.Fatal("unexpected match for unknown command")
	}
}

type fakeMenu struct {
	got []tele.Command
	err error
}

func (f *fakeMenu) SetCommands(opts ...any) error {
	for _, o := range opts {
		if cmds, ok := o.([]tele.Command); ok {
			f.got = cmds
		}
	}
	return f.err
}

func TestInitBotCommands(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/pray", commands.Command{Handler: noop, Description: "Submit a prayer request"})

	menu := &fakeMenu{}
	InitBotCommands(menu, reg)
	if len(menu.got) != 1 || menu.got[0].Text != "pray" {
		t.Fatalf("menu = %+v", menu.got)
	}

	InitBotCommands(&fakeMenu{err: errors.New("boom")}, reg)
}
