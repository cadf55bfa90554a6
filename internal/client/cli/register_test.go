package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/client/services"
)

func TestRegister_FarmerFlow(t *testing.T) {
	capturePrintln(t)
	stubTextInputs(t,
		"farmer",        // role
		"bob@farm.org",  // email
		"123",           // phone
		"5",             // capacity
		"north, south",  // locations
	)
	stubPassword(t, []byte("secret"))

	reg := &fakeReg{submitID: 11}
	a := &App{reg: reg}

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if reg.submitCalls != 1 {
		t.Fatalf("Submit calls: %d", reg.submitCalls)
	}

	d := reg.lastDraft
	if d.Role != models.RoleFarmer || d.Email != "bob@farm.org" || d.Password != "secret" {
		t.Fatalf("draft base fields: %+v", d)
	}
	if d.PhoneNumber != "123" || d.LandHandlingCapacity != "5" || d.PreferredLocations != "north, south" {
		t.Fatalf("draft farmer fields: %+v", d)
	}
}

func TestRegister_LandlordLoadsAttachments(t *testing.T) {
	capturePrintln(t)

	dir := t.TempDir()
	p1 := filepath.Join(dir, "one.jpg")
	p2 := filepath.Join(dir, "two.jpg")
	if err := os.WriteFile(p1, []byte("img1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p2, []byte("img2"), 0o600); err != nil {
		t.Fatal(err)
	}

	stubTextInputs(t,
		"landlord",
		"lena@land.org",
		"456",
		"loamy",
		"12",
		"north ridge",
		p1+", "+p2,
	)
	stubPassword(t, []byte("secret"))

	reg := &fakeReg{submitID: 21}
	a := &App{reg: reg}

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}

	d := reg.lastDraft
	if d.SoilType != "loamy" || d.Acres != "12" || d.Location != "north ridge" {
		t.Fatalf("draft landlord fields: %+v", d)
	}
	if len(d.Files) != 2 || d.Files[0].Name != "one.jpg" || d.Files[1].Name != "two.jpg" {
		t.Fatalf("attachments: %+v", d.Files)
	}
	if string(d.Files[0].Data) != "img1" {
		t.Fatalf("attachment data: %q", d.Files[0].Data)
	}
}

func TestRegister_ValidationFailureSkipsSubmit(t *testing.T) {
	capturePrintln(t)
	stubTextInputs(t, "admin", "")
	stubPassword(t, []byte("secret"))

	reg := &fakeReg{validateErr: &services.ValidationError{
		Fields: map[string]string{"email": "this field is required"},
	}}
	a := &App{reg: reg}

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("validation failure should not bubble up: %v", err)
	}
	if reg.submitCalls != 0 {
		t.Fatalf("Submit called on invalid draft")
	}
}

func TestRegister_PartialFailureSurfaces(t *testing.T) {
	capturePrintln(t)
	stubTextInputs(t, "farmer", "bob@farm.org", "123", "5", "north")
	stubPassword(t, []byte("secret"))

	reg := &fakeReg{submitErr: &services.RegistrationError{
		Message: "partial registration: account created, profile failed",
		Partial: true,
	}}
	a := &App{reg: reg}

	if err := a.Register(context.Background()); err == nil {
		t.Fatalf("partial failure should be returned")
	}
}
