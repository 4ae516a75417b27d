package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// resolveVia menjalankan ResolveTenantContext di dalam handler fiber
// setelah locals diisi, meniru hydrate AuthJWT.
func resolveVia(t *testing.T, locals map[string]interface{}) (TenantContext, error) {
	t.Helper()

	var (
		tc      TenantContext
		callErr error
	)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		tc, callErr = ResolveTenantContext(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return tc, callErr
}

func TestResolveTenantContext(t *testing.T) {
	userID := uuid.New()
	activeID := uuid.New()
	instructorAcademy := uuid.New()
	adminAcademy := uuid.New()
	unionAcademy := uuid.New()

	tests := []struct {
		name        string
		locals      map[string]interface{}
		wantErr     error
		wantAcademy uuid.UUID
		wantRole    string
	}{
		{
			name: "academy_id eksplisit dipakai langsung",
			locals: map[string]interface{}{
				LocUserID:          userID.String(),
				LocActiveAcademyID: activeID.String(),
				LocRole:            "Instructor",
			},
			wantAcademy: activeID,
			wantRole:    "instructor",
		},
		{
			name: "fallback pertama ke academy_instructor_ids",
			locals: map[string]interface{}{
				LocUserID:               userID,
				LocAcademyInstructorIDs: []string{instructorAcademy.String()},
				LocAcademyAdminIDs:      []string{adminAcademy.String()},
				LocAcademyIDs:           []string{unionAcademy.String()},
			},
			wantAcademy: instructorAcademy,
		},
		{
			name: "fallback kedua ke academy_admin_ids",
			locals: map[string]interface{}{
				LocUserID:          userID,
				LocAcademyAdminIDs: []interface{}{adminAcademy.String()},
				LocAcademyIDs:      []string{unionAcademy.String()},
			},
			wantAcademy: adminAcademy,
		},
		{
			name: "fallback terakhir ke union academy_ids",
			locals: map[string]interface{}{
				LocUserID:     userID,
				LocAcademyIDs: []uuid.UUID{unionAcademy},
			},
			wantAcademy: unionAcademy,
		},
		{
			name:    "tanpa user_id: unauthenticated",
			locals:  map[string]interface{}{LocActiveAcademyID: activeID.String()},
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "user tanpa academy manapun: tenant missing",
			locals:  map[string]interface{}{LocUserID: userID.String()},
			wantErr: ErrTenantMissing,
		},
		{
			name: "list kosong tidak dihitung sebagai tenant",
			locals: map[string]interface{}{
				LocUserID:     userID.String(),
				LocAcademyIDs: []string{},
			},
			wantErr: ErrTenantMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := resolveVia(t, tt.locals)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if tc.AcademyID != tt.wantAcademy {
				t.Errorf("academy = %v, want %v", tc.AcademyID, tt.wantAcademy)
			}
			if tc.UserID != userID {
				t.Errorf("user = %v, want %v", tc.UserID, userID)
			}
			if tt.wantRole != "" && tc.Role != tt.wantRole {
				t.Errorf("role = %q, want %q", tc.Role, tt.wantRole)
			}
			if tc.Scope().AcademyID != tt.wantAcademy {
				t.Errorf("scope = %v, want %v", tc.Scope().AcademyID, tt.wantAcademy)
			}
		})
	}
}

func TestFiberErrorMapping(t *testing.T) {
	if fe, ok := FiberError(ErrUnauthenticated).(*fiber.Error); !ok || fe.Code != fiber.StatusUnauthorized {
		t.Errorf("unauthenticated harus 401, got %v", fe)
	}
	if fe, ok := FiberError(ErrTenantMissing).(*fiber.Error); !ok || fe.Code != fiber.StatusUnauthorized {
		t.Errorf("tenant missing harus 401, got %v", fe)
	}
}
