package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/logging"
)

// RestClient is the HTTP implementation of Client, backed by resty. One
// instance is shared by every service; it owns the base endpoint and the
// fixed request timeout and nothing else. It does not retry.
type RestClient struct {
	rc  *resty.Client
	log logging.Logger
}

func NewRestClient(endpointURL string, timeout time.Duration, log logging.Logger) *RestClient {
	rc := resty.New().
		SetBaseURL(endpointURL).
		SetTimeout(timeout)
	return &RestClient{rc: rc, log: log}
}

// mapError translates transport-level failures to ErrUnavailable. Responses
// that arrived, whatever their status, never pass through here.
func (c *RestClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// checkStatus turns any non-2xx response into an HTTPError, pulling the
// message from the service's {"detail": ...} payload when present.
func checkStatus(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	he := &HTTPError{Status: resp.StatusCode()}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Detail != "" {
		he.Detail = payload.Detail
	} else {
		he.Detail = strings.TrimSpace(string(resp.Body()))
	}
	return he
}

func (c *RestClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/login")
	if err != nil {
		return nil, c.mapError(err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestClient) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("refresh_token", refreshToken).
		SetResult(&out).
		Post("/refresh-token")
	if err != nil {
		return "", c.mapError(err)
	}
	if err := checkStatus(resp); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *RestClient) RegisterUser(ctx context.Context, email, password string, role models.Role) (*RegisterResult, error) {
	var out RegisterResult
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password, "role": string(role)}).
		SetResult(&out).
		Post("/register")
	if err != nil {
		return nil, c.mapError(err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadImages sends all files in one multipart request under the logical
// field "files" and returns the references in the order the service issued
// them, verbatim.
func (c *RestClient) UploadImages(ctx context.Context, token string, files []models.Attachment) ([]string, error) {
	var out struct {
		ImageURLs []string `json:"image_urls"`
	}
	req := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out)
	for _, f := range files {
		req.SetFileReader("files", f.Name, bytes.NewReader(f.Data))
	}
	resp, err := req.Post("/upload/images")
	if err != nil {
		return nil, c.mapError(err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return out.ImageURLs, nil
}

func (c *RestClient) RegisterFarmer(ctx context.Context, token string, reg FarmerRegistration) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(reg).
		Post("/farmer/register")
	if err != nil {
		return c.mapError(err)
	}
	return checkStatus(resp)
}

func (c *RestClient) GetFarmer(ctx context.Context, token string, userID int) (*models.FarmerProfile, error) {
	var out models.FarmerProfile
	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Get(fmt.Sprintf("/farmers/%d", userID))
	if err != nil {
		return nil, c.mapError(err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestClient) RegisterLandlord(ctx context.Context, token string, reg LandlordRegistration) error {
	if reg.Images == nil {
		reg.Images = []string{}
	}
	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(reg).
		Post("/landlord/register")
	if err != nil {
		return c.mapError(err)
	}
	return checkStatus(resp)
}

func (c *RestClient) ListFarmers(ctx context.Context, token string) ([]models.FarmerProfile, error) {
	var out []models.FarmerProfile
	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Get("/farmers")
	if err != nil {
		return nil, c.mapError(err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RestClient) ListLandlords(ctx context.Context, token string) ([]models.LandlordProfile, error) {
	var out []models.LandlordProfile
	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Get("/landlords")
	if err != nil {
		return nil, c.mapError(err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RestClient) DashboardStats(ctx context.Context, token string) (*models.DashboardStats, error) {
	var out models.DashboardStats
	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Get("/dashboard")
	if err != nil {
		return nil, c.mapError(err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestClient) ListCollaborations(ctx context.Context, token string) ([]models.Collaboration, error) {
	var out []models.Collaboration
	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Get("/api/collaborations")
	if err != nil {
		return nil, c.mapError(err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return out, nil
}
