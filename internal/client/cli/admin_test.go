package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/krishiu/krishi-cli/internal/client/api"
	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/client/session"
)

func adminSession() *session.Session {
	return &session.Session{AccessToken: "tok", RefreshToken: "rtok", UserID: 1, Email: "root@x.com", Role: models.RoleAdmin}
}

func TestDashboard_PrintsStats(t *testing.T) {
	out := capturePrintln(t)

	dash := &fakeDashboard{stats: &models.DashboardStats{
		TotalFarmers: 3, TotalLandlords: 2, TotalSpaces: 5, TotalConnections: 1, TotalAcres: 42.5,
	}}
	a := &App{dashboard: dash, sess: adminSession()}

	if err := a.Dashboard(context.Background()); err != nil {
		t.Fatalf("Dashboard err: %v", err)
	}
	joined := strings.Join(*out, "\n")
	if !strings.Contains(joined, "Farmers: 3") || !strings.Contains(joined, "Acres: 42.5") {
		t.Fatalf("output: %s", joined)
	}
}

func TestDashboard_RefreshesOnceOnUnauthorized(t *testing.T) {
	capturePrintln(t)

	auth := &fakeAuth{}
	dash := &fakeDashboard{
		stats: &models.DashboardStats{},
		errs:  []error{&api.HTTPError{Status: 401, Detail: "Token expired"}},
	}
	a := &App{auth: auth, dashboard: dash, sess: adminSession()}

	if err := a.Dashboard(context.Background()); err != nil {
		t.Fatalf("Dashboard err: %v", err)
	}
	if !auth.refreshCalled {
		t.Fatalf("token not refreshed")
	}
	if dash.calls != 2 {
		t.Fatalf("call not retried, calls=%d", dash.calls)
	}
	if a.sess.AccessToken != "refreshed" {
		t.Fatalf("session token not updated: %q", a.sess.AccessToken)
	}
}

func TestDashboard_NoRetryWhenRefreshFails(t *testing.T) {
	capturePrintln(t)

	auth := &fakeAuth{refreshErr: errors.New("refresh down")}
	unauthorized := &api.HTTPError{Status: 401, Detail: "Token expired"}
	dash := &fakeDashboard{errs: []error{unauthorized}}
	a := &App{auth: auth, dashboard: dash, sess: adminSession()}

	err := a.Dashboard(context.Background())
	if !api.IsUnauthorized(err) {
		t.Fatalf("want original unauthorized error, got %v", err)
	}
	if dash.calls != 1 {
		t.Fatalf("retried after failed refresh, calls=%d", dash.calls)
	}
}

func TestDashboard_NoRetryOnOtherErrors(t *testing.T) {
	capturePrintln(t)

	auth := &fakeAuth{}
	dash := &fakeDashboard{errs: []error{&api.HTTPError{Status: 500, Detail: "oops"}}}
	a := &App{auth: auth, dashboard: dash, sess: adminSession()}

	if err := a.Dashboard(context.Background()); err == nil {
		t.Fatalf("want error")
	}
	if auth.refreshCalled {
		t.Fatalf("refreshed on a non-auth failure")
	}
	if dash.calls != 1 {
		t.Fatalf("retried a non-auth failure, calls=%d", dash.calls)
	}
}

func TestCollaborations_Empty(t *testing.T) {
	out := capturePrintln(t)

	dash := &fakeDashboard{}
	a := &App{dashboard: dash, sess: adminSession()}

	if err := a.Collaborations(context.Background()); err != nil {
		t.Fatalf("Collaborations err: %v", err)
	}
	if joined := strings.Join(*out, "\n"); !strings.Contains(joined, "No collaborations") {
		t.Fatalf("output: %s", joined)
	}
}

func TestListings(t *testing.T) {
	out := capturePrintln(t)

	dash := &fakeDashboard{
		farmers:   []models.FarmerProfile{{ID: 1, UserID: 7, PhoneNumber: "123"}},
		landlords: []models.LandlordProfile{{ID: 2, UserID: 8, LandType: "dry", Acres: 3, Location: "west"}},
		collabs:   []models.Collaboration{{Farmer: "bob", Landlord: "lena", Crop: "rice", Status: "active"}},
	}
	a := &App{dashboard: dash, sess: adminSession()}

	if err := a.Farmers(context.Background()); err != nil {
		t.Fatalf("Farmers err: %v", err)
	}
	if err := a.Landlords(context.Background()); err != nil {
		t.Fatalf("Landlords err: %v", err)
	}
	if err := a.Collaborations(context.Background()); err != nil {
		t.Fatalf("Collaborations err: %v", err)
	}

	joined := strings.Join(*out, "\n")
	for _, want := range []string{"#1 user 7 phone 123", "dry, 3 acres at west", "bob + lena: rice (active)"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("output missing %q:\n%s", want, joined)
		}
	}
}
