package app

import (
	"context"
	"reflect"
	"testing"

	coreconfig "github.com/m3rciful/prayerbot/core/config"
	coretelegram "github.com/m3rciful/prayerbot/core/telegram"
	"github.com/m3rciful/prayerbot/core/telegram/state"
	"github.com/m3rciful/prayerbot/prayer"

	tele "gopkg.in/telebot.v4"
)

func testConfig() *Config {
	return &Config{
		Config: coreconfig.Config{Telegram: coreconfig.TelegramConfig{Token: "t", RunMode: "longpoll"}},
		Prayer: PrayerConfig{GroupID: -100, TopicID: 3},
	}
}

// updatesFromBot runs message through an offline bot's update processing and
// returns what each handler built from it.
func updatesFromBot(t *testing.T, msg *tele.Message) []prayer.Update {
	t.Helper()
	b, err := tele.NewBot(tele.Settings{Offline: true, Synchronous: true})
	if err != nil {
		t.Fatal(err)
	}
	b.Me.Username = "PrayBot"

	var got []prayer.Update
	record := func(c tele.Context) error {
		got = append(got, toUpdate(c))
		return nil
	}
	b.Handle("/pray", record)
	b.Handle(tele.OnText, record)
	b.ProcessUpdate(tele.Update{ID: 1, Message: msg})
	return got
}

func TestToUpdateThroughBot(t *testing.T) {
	private := &tele.Chat{ID: 11, Type: tele.ChatPrivate}
	user := &tele.User{ID: 11}

	tests := []struct {
		name string
		text string
		args []string
	}{
		{"single line", "/pray  for   peace ", []string{"for", "peace"}},
		{"multi line", "/pray Please pray\nfor my family", []string{"Please", "pray", "for", "my", "family"}},
		{"request on later line", "/pray\n\nPlease pray for my mother", []string{"Please", "pray", "for", "my", "mother"}},
		{"bot name suffix", "/pray@PrayBot healing for Ann", []string{"healing", "for", "Ann"}},
		{"no args", "/pray", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := updatesFromBot(t, &tele.Message{Sender: user, Chat: private, Text: tt.text})
			if len(got) != 1 {
				t.Fatalf("handled %d times, want 1", len(got))
			}
			upd := got[0]
			if upd.UserID != 11 || upd.ChatID != 11 || !upd.Direct || upd.Text != tt.text {
				t.Fatalf("unexpected update %+v", upd)
			}
			if len(upd.Args) != len(tt.args) || (len(tt.args) > 0 && !reflect.DeepEqual(upd.Args, tt.args)) {
				t.Fatalf("args = %q, want %q", upd.Args, tt.args)
			}
		})
	}
}

func TestToUpdatePlainTextInGroup(t *testing.T) {
	got := updatesFromBot(t, &tele.Message{
		Sender: &tele.User{ID: 7},
		Chat:   &tele.Chat{ID: -5, Type: tele.ChatSuperGroup},
		Text:   "@PrayBot thank you",
	})
	if len(got) != 1 {
		t.Fatalf("handled %d times, want 1", len(got))
	}
	if got[0].Direct || got[0].ChatID != -5 || got[0].Args != nil {
		t.Fatalf("unexpected update %+v", got[0])
	}
}

func TestCommandArgs(t *testing.T) {
	if got := commandArgs("hello there"); got != nil {
		t.Fatalf("plain text args = %q", got)
	}
	if got := commandArgs("/setnick \tFaithful\nOne "); !reflect.DeepEqual(got, []string{"Faithful", "One"}) {
		t.Fatalf("args = %q", got)
	}
}

func TestTelegramRunOptionsRegistersCommands(t *testing.T) {
	a := New(testConfig(), state.NewStore())
	opts, err := a.TelegramRunOptions()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/start", "/help", "/pray", "/setnick", "/mynick"}
	if got := opts.Registry.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	if opts.Registry.TextFallback() == nil {
		t.Fatal("text fallback not registered")
	}
	if len(opts.Routes) != len(want)+1 {
		t.Fatalf("routes = %d, want %d", len(opts.Routes), len(want)+1)
	}
	if opts.Routes[len(opts.Routes)-1].Endpoint != tele.OnText {
		t.Fatal("last route should handle text")
	}
	if opts.OnError == nil || opts.OnStart == nil {
		t.Fatal("lifecycle hooks missing")
	}
}

func TestOnStartResolvesMention(t *testing.T) {
	a := New(testConfig(), state.NewStore())
	rt := coretelegram.Runtime{Bot: &tele.Bot{Me: &tele.User{Username: "PrayBot"}}}
	if err := a.onStart(context.Background(), rt); err != nil {
		t.Fatal(err)
	}
	if got := a.dispatcher.Mention(); got != "@PrayBot" {
		t.Fatalf("mention = %q", got)
	}

	cfg := testConfig()
	cfg.Telegram.Username = "@Configured"
	a = New(cfg, state.NewStore())
	if err := a.onStart(context.Background(), rt); err != nil {
		t.Fatal(err)
	}
	if got := a.dispatcher.Mention(); got != "@Configured" {
		t.Fatalf("configured mention overridden: %q", got)
	}
}
