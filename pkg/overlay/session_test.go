package overlay

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

func TestStartMenuRunsProgram(t *testing.T) {
	mc := &fakeMachine{programs: []string{`C:\GAME.EXE`, `C:\README.TXT`}}
	h := newHarness(t, mc)
	h.s.StartMenu(false)
	if h.s.Mode() != ModeMain || !h.s.Intercepting() {
		t.Fatalf("mode = %v, intercepting = %v", h.s.Mode(), h.s.Intercepting())
	}

	h.clock.Advance(250 * time.Millisecond)
	h.post(keyUp(constants.KeyEnter))

	if len(mc.runs) != 1 || mc.runs[0].Kind != RunProgram || mc.runs[0].Path != `C:\GAME.EXE` {
		t.Fatalf("runs = %+v", mc.runs)
	}
	if h.s.Mode() != ModeClosed || h.s.Intercepting() {
		t.Errorf("menu still open after run: mode %v", h.s.Mode())
	}
}

func TestStartMenuAsksBeforeReset(t *testing.T) {
	tests := []struct {
		name  string
		keys  []Event
		runs  int
		state Mode
	}{
		{"confirm", []Event{keyDown(constants.KeyLeft), keyUp(constants.KeyEnter)}, 1, ModeClosed},
		{"cancel", []Event{keyUp(constants.KeyEsc)}, 0, ModeMain},
		{"default button", []Event{keyUp(constants.KeyEnter)}, 0, ModeMain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := &fakeMachine{programs: []string{`C:\GAME.EXE`}, running: true}
			h := newHarness(t, mc)
			h.s.StartMenu(false)
			h.clock.Advance(250 * time.Millisecond)

			h.post(keyUp(constants.KeyEnter))
			if !handler[*StartMenu](t, h.s).popup {
				t.Fatal("no confirmation popup over a running program")
			}
			for _, ev := range tt.keys {
				h.post(ev)
			}
			if len(mc.runs) != tt.runs {
				t.Errorf("runs = %d, want %d", len(mc.runs), tt.runs)
			}
			if h.s.Mode() != tt.state {
				t.Errorf("mode = %v, want %v", h.s.Mode(), tt.state)
			}
		})
	}
}

func TestEscClosesMenu(t *testing.T) {
	h := newHarness(t, &fakeMachine{programs: []string{`C:\GAME.EXE`}})
	h.s.StartMenu(false)
	h.clock.Advance(250 * time.Millisecond)
	h.post(keyUp(constants.KeyEsc))
	if h.s.Mode() != ModeClosed {
		t.Errorf("mode = %v, want closed", h.s.Mode())
	}
}

func TestTabCyclesScreens(t *testing.T) {
	tests := []struct {
		name       string
		fullscreen bool
		keys       []constants.Key
		want       []Mode
	}{
		{
			"windowed",
			false,
			[]constants.Key{constants.KeyTab, constants.KeyTab, constants.KeyTab, constants.KeyGrave},
			[]Mode{ModeKeyboard, ModeMapper, ModeMain, ModeMapper},
		},
		{
			"fullscreen skips keyboard",
			true,
			[]constants.Key{constants.KeyTab, constants.KeyTab, constants.KeyGrave},
			[]Mode{ModeMapper, ModeMain, ModeMapper},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, &fakeMachine{programs: []string{`C:\GAME.EXE`}})
			h.s.StartMenu(tt.fullscreen)
			for i, k := range tt.keys {
				h.post(keyUp(k))
				if got := h.s.Mode(); got != tt.want[i] {
					t.Fatalf("after key %d mode = %v, want %v", i, got, tt.want[i])
				}
			}
			if h.s.Fullscreen() != tt.fullscreen {
				t.Errorf("fullscreen = %v", h.s.Fullscreen())
			}
		})
	}
}

func TestAnyKeyWaitsForRelease(t *testing.T) {
	h := newHarness(t, &fakeMachine{})
	var result []bool
	h.s.WaitAnyKey(AnyKeyReturnToMenu, func(pressed bool) { result = append(result, pressed) })

	h.src.joy(constants.JoypadB, 1)
	h.frame(16 * time.Millisecond)
	h.src.joy(constants.JoypadB, 0)
	h.frame(16 * time.Millisecond)
	if len(result) != 0 {
		t.Fatal("a press inside the grace window finished the prompt")
	}

	h.clock.Advance(constants.DefaultAnyKeyGrace)
	h.src.joy(constants.JoypadB, 1)
	h.frame(16 * time.Millisecond)
	if len(result) != 0 {
		t.Fatal("the prompt finished on a press")
	}
	h.src.joy(constants.JoypadB, 0)
	h.frame(16 * time.Millisecond)

	if len(result) != 1 || !result[0] {
		t.Fatalf("result = %v, want [true]", result)
	}
	if h.s.Intercepting() {
		t.Error("prompt still intercepting")
	}
}

func TestGameEndedPromptTimesOut(t *testing.T) {
	h := newHarness(t, &fakeMachine{})
	var result []bool
	h.s.WaitAnyKey(AnyKeyGameEnded, func(pressed bool) { result = append(result, pressed) })

	h.frame(4 * time.Second)
	if len(result) != 0 {
		t.Fatal("prompt ended before the menu time")
	}
	h.frame(2 * time.Second)
	if len(result) != 1 || result[0] {
		t.Fatalf("result = %v, want [false]", result)
	}
}

func TestRunMenuBootSoloRunsProgram(t *testing.T) {
	mc := &fakeMachine{programs: []string{`C:\GAME.EXE`}}
	h := newHarness(t, mc)
	h.s.RunMenu(MenuBoot)
	if len(mc.runs) != 1 || mc.runs[0].Path != `C:\GAME.EXE` {
		t.Fatalf("runs = %+v", mc.runs)
	}
	if h.s.Mode() != ModeClosed {
		t.Errorf("mode = %v, want closed", h.s.Mode())
	}
}

func TestRunMenuBootShowsMenu(t *testing.T) {
	mc := &fakeMachine{programs: []string{`C:\B.EXE`, `C:\A.EXE`}}
	h := newHarness(t, mc)
	h.s.RunMenu(MenuBoot)
	if h.s.Mode() != ModeMain || !h.s.Fullscreen() {
		t.Fatalf("mode = %v, fullscreen = %v", h.s.Mode(), h.s.Fullscreen())
	}
	if len(mc.runs) != 0 {
		t.Errorf("runs = %+v", mc.runs)
	}
}

func TestRunMenuBootAutoStarts(t *testing.T) {
	mc := &fakeMachine{programs: []string{`C:\B.EXE`, `C:\A.EXE`}}
	h := newHarness(t, mc)
	h.s.SetAutoStart(AutoStart{Enabled: true})
	h.s.RunMenu(MenuBoot)
	h.clock.Advance(250 * time.Millisecond)
	h.post(keyUp(constants.KeyEnter))
	if len(mc.runs) != 1 {
		t.Fatalf("runs = %+v", mc.runs)
	}

	h.s.RunMenu(MenuBoot)
	if len(mc.runs) != 2 || mc.runs[1] != mc.runs[0] {
		t.Fatalf("runs = %+v, want the first run repeated", mc.runs)
	}
	if mc.runs[1].Path != `C:\A.EXE` || !mc.runs[1].AutoStart.Enabled {
		t.Errorf("auto start request = %+v", mc.runs[1])
	}
	if h.s.Mode() != ModeClosed {
		t.Errorf("mode = %v, want closed", h.s.Mode())
	}
}

func TestRunMenuFinish(t *testing.T) {
	t.Run("menu time zero exits", func(t *testing.T) {
		mc := &fakeMachine{programs: []string{`C:\GAME.EXE`}}
		h := newHarness(t, mc)
		h.s.cfg.MenuTimeS = 0
		h.s.RunMenu(MenuFinish)
		if !mc.exited || h.s.Intercepting() {
			t.Errorf("exited = %v, intercepting = %v", mc.exited, h.s.Intercepting())
		}
	})

	t.Run("game ended prompt exits", func(t *testing.T) {
		mc := &fakeMachine{programs: []string{`C:\GAME.EXE`}}
		h := newHarness(t, mc)
		h.s.RunMenu(MenuFinish)
		if mc.exited || !h.s.Intercepting() {
			t.Fatalf("exited = %v, intercepting = %v", mc.exited, h.s.Intercepting())
		}
		h.frame(6 * time.Second)
		if !mc.exited {
			t.Error("machine did not exit after the prompt ran out")
		}
	})

	t.Run("short run returns to menu", func(t *testing.T) {
		mc := &fakeMachine{programs: []string{`C:\GAME.EXE`}}
		h := newHarness(t, mc)
		h.s.RunMenu(MenuBoot)
		h.frame(100 * time.Millisecond)
		h.s.RunMenu(MenuFinish)
		h.frame(16 * time.Millisecond)

		h.clock.Advance(constants.DefaultAnyKeyGrace)
		h.src.joy(constants.JoypadA, 1)
		h.frame(16 * time.Millisecond)
		h.src.joy(constants.JoypadA, 0)
		h.frame(16 * time.Millisecond)

		if mc.exited {
			t.Fatal("machine exited after a short run")
		}
		if h.s.Mode() != ModeMain || !h.s.Fullscreen() {
			t.Errorf("mode = %v, fullscreen = %v", h.s.Mode(), h.s.Fullscreen())
		}
	})
}

func TestGameBindingsReachMachine(t *testing.T) {
	mc := &fakeMachine{}
	h := newHarness(t, mc)
	if err := h.table.AddBind(PadInputAt(5).Binding(0), KeyTarget(constants.KeySpace)); err != nil {
		t.Fatal(err)
	}

	h.src.joy(constants.JoypadA, 1)
	h.frame(16 * time.Millisecond)
	h.src.joy(constants.JoypadA, 0)
	h.frame(16 * time.Millisecond)

	want := []Event{
		{Type: constants.EventKeyDown, Value: int(constants.KeySpace)},
		{Type: constants.EventKeyUp, Value: int(constants.KeySpace)},
	}
	if len(mc.events) != len(want) || mc.events[0] != want[0] || mc.events[1] != want[1] {
		t.Errorf("events = %v, want %v", mc.events, want)
	}
}

func TestSpecialBindingsOpenOverlays(t *testing.T) {
	mc := &fakeMachine{}
	h := newHarness(t, mc)
	if err := h.table.AddBind(PadInputAt(14).Binding(0), TargetOnScreenKeyboard); err != nil {
		t.Fatal(err)
	}
	if err := h.table.AddBind(PadInputAt(10).Binding(0), TargetActionWheel); err != nil {
		t.Fatal(err)
	}
	h.table.AddWheelItem(0, KeyTarget(constants.KeyF1))

	h.src.joy(constants.JoypadL, 1)
	h.frame(16 * time.Millisecond)
	h.frame(16 * time.Millisecond)
	if st := h.s.Wheels().Wheel(0).State(); st != WheelOpen || !h.s.Intercepting() {
		t.Fatalf("wheel state = %s, intercepting = %v", st, h.s.Intercepting())
	}
	h.src.joy(constants.JoypadL, 0)
	h.frame(16 * time.Millisecond)
	h.frame(time.Second)
	if h.s.Wheels().Active() || h.s.Intercepting() {
		t.Fatal("wheel still open after release")
	}

	h.src.joy(constants.JoypadL3, 1)
	h.frame(16 * time.Millisecond)
	if h.s.Mode() != ModeKeyboard {
		t.Errorf("mode = %v, want keyboard", h.s.Mode())
	}
}

func TestOpenWheelIgnoredWhileMenuOpen(t *testing.T) {
	h := newHarness(t, &fakeMachine{programs: []string{`C:\GAME.EXE`}})
	h.s.StartMenu(false)
	h.s.OpenWheel(0)
	if h.s.Wheels().Active() {
		t.Error("wheel opened over the menu")
	}
}

func TestSessionTheme(t *testing.T) {
	custom := DefaultTheme()
	custom.Selection = ARGB(0x00FF00)
	SetTheme(custom)
	defer SetTheme(DefaultTheme())

	cfg := DefaultConfig()
	cfg.MenuAlpha = 0x40
	s, err := NewSession(fakeSource{}, &fakeMachine{}, NewBindingTable(nil), NewManualClock(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.theme.Selection != custom.Selection {
		t.Errorf("selection colour = %v, want %v", s.theme.Selection, custom.Selection)
	}
	if s.theme.BlendAlpha != 0x40 {
		t.Errorf("blend alpha = %#x, want 0x40", s.theme.BlendAlpha)
	}
}

func TestOnScreenClosedReleasesWheel(t *testing.T) {
	mc := &fakeMachine{}
	h := newHarness(t, mc)
	for _, k := range []constants.Key{constants.KeyA, constants.KeyB, constants.KeyC, constants.KeyD} {
		h.table.AddWheelItem(0, KeyTarget(k))
	}

	h.s.OpenWheel(0)
	h.src.stick(constants.AnalogLeft, constants.AnalogX, constants.AxisMax)
	h.frame(16 * time.Millisecond)
	h.src.joy(constants.JoypadB, 1)
	h.frame(16 * time.Millisecond)
	if st := h.s.Wheels().Wheel(0).State(); st != WheelOpenPressed {
		t.Fatalf("wheel state = %s, want open_pressed", st)
	}

	h.s.OnScreenClosed()
	want := []Event{
		{Type: constants.EventKeyDown, Value: int(constants.KeyC)},
		{Type: constants.EventKeyUp, Value: int(constants.KeyC)},
	}
	if len(mc.events) != len(want) || mc.events[0] != want[0] || mc.events[1] != want[1] {
		t.Errorf("events = %v, want %v", mc.events, want)
	}
	if h.s.Intercepting() || h.s.Wheels().Active() {
		t.Error("wheel still running after the screen closed")
	}
}

func TestCancelledRunKeepsMenuOpen(t *testing.T) {
	mc := &fakeMachine{programs: []string{`C:\GAME.EXE`}, runErr: ErrCancelled}
	h := newHarness(t, mc)
	h.s.StartMenu(false)
	h.clock.Advance(250 * time.Millisecond)
	h.post(keyUp(constants.KeyEnter))

	if len(mc.runs) != 1 {
		t.Fatalf("runs = %+v", mc.runs)
	}
	if h.s.Mode() != ModeMain {
		t.Errorf("mode = %v, want the start menu to stay open", h.s.Mode())
	}
}

func TestRunMenuNormalAlwaysOpens(t *testing.T) {
	h := newHarness(t, &fakeMachine{programs: []string{`C:\GAME.EXE`}})
	h.s.RunMenu(MenuNormal)
	if h.s.Mode() != ModeMain || !h.s.Fullscreen() {
		t.Errorf("mode = %v, fullscreen = %v", h.s.Mode(), h.s.Fullscreen())
	}
}
