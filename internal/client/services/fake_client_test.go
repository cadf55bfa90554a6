package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/krishiu/krishi-cli/internal/client/api"
	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.Default())
}

// fakeClient implements api.Client for service unit tests. It records the
// order of calls and the last arguments so tests can assert on side effects.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	loginRet *api.LoginResult
	loginErr error

	refreshRet string
	refreshErr error

	// registerUserFn, when set, overrides the canned result; used to block
	// mid-call in the single-flight test.
	registerUserFn  func(ctx context.Context) (*api.RegisterResult, error)
	registerUserRet *api.RegisterResult
	registerUserErr error

	uploadRet       []string
	uploadErr       error
	lastUploadToken string
	lastUploadFiles []models.Attachment

	registerFarmerErr error
	lastFarmerToken   string
	lastFarmerReg     api.FarmerRegistration

	getFarmerRet *models.FarmerProfile
	getFarmerErr error

	registerLandlordErr error
	lastLandlordToken   string
	lastLandlordReg     api.LandlordRegistration

	listFarmersRet   []models.FarmerProfile
	listFarmersErr   error
	listLandlordsRet []models.LandlordProfile
	listLandlordsErr error

	statsRet  *models.DashboardStats
	statsErr  error
	collabRet []models.Collaboration
	collabErr error
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) callNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	f.record("login")
	return f.loginRet, f.loginErr
}

func (f *fakeClient) Refresh(ctx context.Context, refreshToken string) (string, error) {
	f.record("refresh")
	return f.refreshRet, f.refreshErr
}

func (f *fakeClient) RegisterUser(ctx context.Context, email, password string, role models.Role) (*api.RegisterResult, error) {
	f.record("register_user")
	if f.registerUserFn != nil {
		return f.registerUserFn(ctx)
	}
	return f.registerUserRet, f.registerUserErr
}

func (f *fakeClient) UploadImages(ctx context.Context, token string, files []models.Attachment) ([]string, error) {
	f.record("upload_images")
	f.lastUploadToken = token
	f.lastUploadFiles = append([]models.Attachment(nil), files...)
	return f.uploadRet, f.uploadErr
}

func (f *fakeClient) RegisterFarmer(ctx context.Context, token string, reg api.FarmerRegistration) error {
	f.record("register_farmer")
	f.lastFarmerToken = token
	f.lastFarmerReg = reg
	return f.registerFarmerErr
}

func (f *fakeClient) GetFarmer(ctx context.Context, token string, userID int) (*models.FarmerProfile, error) {
	f.record("get_farmer")
	return f.getFarmerRet, f.getFarmerErr
}

func (f *fakeClient) RegisterLandlord(ctx context.Context, token string, reg api.LandlordRegistration) error {
	f.record("register_landlord")
	f.lastLandlordToken = token
	f.lastLandlordReg = reg
	return f.registerLandlordErr
}

func (f *fakeClient) ListFarmers(ctx context.Context, token string) ([]models.FarmerProfile, error) {
	f.record("list_farmers")
	return f.listFarmersRet, f.listFarmersErr
}

func (f *fakeClient) ListLandlords(ctx context.Context, token string) ([]models.LandlordProfile, error) {
	f.record("list_landlords")
	return f.listLandlordsRet, f.listLandlordsErr
}

func (f *fakeClient) DashboardStats(ctx context.Context, token string) (*models.DashboardStats, error) {
	f.record("dashboard_stats")
	return f.statsRet, f.statsErr
}

func (f *fakeClient) ListCollaborations(ctx context.Context, token string) ([]models.Collaboration, error) {
	f.record("list_collaborations")
	return f.collabRet, f.collabErr
}
