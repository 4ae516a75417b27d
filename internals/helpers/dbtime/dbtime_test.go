package dbtime

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return loc
}

func TestStartOfDay(t *testing.T) {
	jakarta := mustLoad(t, "Asia/Jakarta") // UTC+7
	tokyo := mustLoad(t, "Asia/Tokyo")     // UTC+9

	tests := []struct {
		name string
		in   time.Time
		loc  *time.Location
		want time.Time
	}{
		{
			name: "tengah hari lokal",
			in:   time.Date(2026, 8, 28, 13, 45, 9, 0, jakarta),
			loc:  jakarta,
			want: time.Date(2026, 8, 28, 0, 0, 0, 0, jakarta),
		},
		{
			name: "UTC larut malam masih hari berikutnya di Jakarta",
			// 27 Agu 18:30 UTC = 28 Agu 01:30 WIB
			in:   time.Date(2026, 8, 27, 18, 30, 0, 0, time.UTC),
			loc:  jakarta,
			want: time.Date(2026, 8, 28, 0, 0, 0, 0, jakarta),
		},
		{
			name: "instant sama, hari berbeda per timezone",
			// 27 Agu 16:30 UTC = 27 Agu 23:30 WIB, tapi 28 Agu 01:30 JST
			in:   time.Date(2026, 8, 27, 16, 30, 0, 0, time.UTC),
			loc:  tokyo,
			want: time.Date(2026, 8, 28, 0, 0, 0, 0, tokyo),
		},
		{
			name: "loc nil jatuh ke UTC",
			in:   time.Date(2026, 8, 28, 5, 0, 0, 0, jakarta), // 27 Agu 22:00 UTC
			loc:  nil,
			want: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfDay(tt.in, tt.loc)
			if !got.Equal(tt.want) {
				t.Errorf("StartOfDay = %v, want %v", got, tt.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
				t.Errorf("hasil bukan batas hari: %v", got)
			}
		})
	}
}

func TestStartOfDayIdempotent(t *testing.T) {
	jakarta := mustLoad(t, "Asia/Jakarta")
	in := time.Date(2026, 8, 28, 19, 12, 0, 0, jakarta)

	once := StartOfDay(in, jakarta)
	twice := StartOfDay(once, jakarta)
	if !once.Equal(twice) {
		t.Errorf("normalisasi dua kali berubah: %v != %v", once, twice)
	}
}

func TestGetAcademyLocationFallbacks(t *testing.T) {
	jakarta := mustLoad(t, "Asia/Jakarta")
	makassar := mustLoad(t, "Asia/Makassar")

	if got := GetAcademyLocation(nil); got != time.UTC {
		t.Errorf("ctx nil: got %v, want UTC", got)
	}

	run := func(t *testing.T, locals map[string]interface{}, want *time.Location) {
		t.Helper()
		var got *time.Location
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			for k, v := range locals {
				c.Locals(k, v)
			}
			got = GetAcademyLocation(c)
			return c.SendString("ok")
		})
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		if got.String() != want.String() {
			t.Errorf("location = %v, want %v", got, want)
		}
	}

	t.Run("academy_loc dari middleware menang", func(t *testing.T) {
		run(t, map[string]interface{}{LocAcademyLoc: makassar}, makassar)
	})
	t.Run("academy_timezone string di-load", func(t *testing.T) {
		run(t, map[string]interface{}{LocAcademyTimezone: "Asia/Makassar"}, makassar)
	})
	t.Run("timezone tidak valid jatuh ke default", func(t *testing.T) {
		run(t, map[string]interface{}{LocAcademyTimezone: "Mars/Olympus"}, jakarta)
	})
	t.Run("tanpa locals jatuh ke default", func(t *testing.T) {
		run(t, nil, jakarta)
	})
}
