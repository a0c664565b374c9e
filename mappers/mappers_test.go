package mappers

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bdwalton/nescart/nesrom"
)

func TestName(t *testing.T) {
	cases := []struct {
		id   uint8
		want string
	}{
		{0, "NROM"},
		{1, "MMC1"},
		{2, "UxROM"},
		{3, "CNROM"},
		{4, "MMC3"},
		{7, "AxROM"},
		{66, "GxROM"},
		{17, "unknown"},
		{255, "unknown"},
	}

	for i, tc := range cases {
		if got := Name(tc.id); got != tc.want {
			t.Errorf("%d: Got %q, want %q", i, got, tc.want)
		}
	}
}

func TestRegistryIDs(t *testing.T) {
	for id, m := range AllMappers {
		if m.ID() != id {
			t.Errorf("mapper %q registered under %d, has id %d", m.Name(), id, m.ID())
		}
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("registering mapper 0 twice didn't panic")
		}
	}()
	RegisterMapper(0, newMapper0())
}

func romWithMapper(t *testing.T, flags6, flags7 uint8) *nesrom.ROM {
	t.Helper()
	data := []byte{0x4e, 0x45, 0x53, 0x1a, 1, 0, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	data = append(data, make([]byte, nesrom.PRG_BLOCK_SIZE)...)
	r, err := nesrom.Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("couldn't load test ROM: %v", err)
	}
	return r
}

func TestFor(t *testing.T) {
	cases := []struct {
		flags6, flags7 uint8
		want           string
		wantErr        error
	}{
		{0x00, 0x00, "NROM", nil},
		{0x11, 0x00, "MMC1", nil},
		{0x41, 0x00, "MMC3", nil},
		{0x20, 0x40, "GxROM", nil},
		{0x10, 0x10, "", ErrUnknownMapper},
	}

	for i, tc := range cases {
		m, err := For(romWithMapper(t, tc.flags6, tc.flags7))
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%d: Got error %v, want %v", i, err, tc.wantErr)
			continue
		}
		if err == nil && m.Name() != tc.want {
			t.Errorf("%d: Got %q, want %q", i, m.Name(), tc.want)
		}
	}
}
