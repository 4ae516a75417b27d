// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Nama locals mengikuti yg di-set di middleware AuthJWT
const (
	LocAcademyTimezone = "academy_timezone" // string, misal "Asia/Jakarta"
	LocAcademyLoc      = "academy_loc"      // *time.Location
)

// GetAcademyLocation mengambil *time.Location milik academy:
// 1) c.Locals("academy_loc") yang diisi middleware
// 2) kalau belum ada: baca "academy_timezone" (string) lalu LoadLocation
// 3) fallback: Asia/Jakarta, terakhir time.UTC
func GetAcademyLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return time.UTC
	}

	if v := c.Locals(LocAcademyLoc); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}

	if v := c.Locals(LocAcademyTimezone); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			if loc, err := time.LoadLocation(strings.TrimSpace(s)); err == nil {
				c.Locals(LocAcademyLoc, loc)
				return loc
			}
		}
	}

	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.UTC
}

// StartOfDay menormalkan t ke batas hari kalender pada location academy.
// Jam berapa pun check-in terjadi, kuncinya selalu tanggal lokal tenant.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
