package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/krishiu/krishi-cli/internal/client/api"
	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/client/session"
	"github.com/krishiu/krishi-cli/internal/logging"
)

// State is the phase of one registration attempt. Attempts move
// Editing -> Submitting -> AccountCreated -> UploadingAttachments? ->
// ProfileCreated -> Done, or to Failed from any of them.
type State string

const (
	StateEditing              State = "editing"
	StateSubmitting           State = "submitting"
	StateAccountCreated       State = "account_created"
	StateUploadingAttachments State = "uploading_attachments"
	StateProfileCreated       State = "profile_created"
	StateDone                 State = "done"
	StateFailed               State = "failed"
)

// RegistrationService drives the multi-step, role-conditional registration
// workflow. Account creation and profile creation are independent service
// calls with no shared transaction, so the orchestrator's job is to make
// partial failure observable and distinguishable, not to fake atomicity. It
// never re-runs account creation after a later step fails.
type RegistrationService interface {
	// Validate checks the draft's base fields plus the role-specific set.
	// Submission must not be attempted while Validate returns an error.
	Validate(draft *models.RegistrationDraft) error

	// Submit runs the full registration: account, optional attachment
	// upload, role profile. Returns the new account id. A second Submit for
	// the same draft while one is in flight fails with ErrSubmitInFlight.
	Submit(ctx context.Context, draft *models.RegistrationDraft) (int, error)

	// AddFarmerProfile and AddLandlordProfile are the dashboard-path
	// equivalents for an already-registered account: no account creation,
	// keyed by the session and authorized with the session token.
	AddFarmerProfile(ctx context.Context, sess *session.Session, acres float64, previousExperience string) error
	AddLandlordProfile(ctx context.Context, sess *session.Session, form models.LandlordForm) error

	// Status reports the state and last error of an attempt, keyed by draft
	// id for Submit or by session for the dashboard path.
	Status(key string) (State, error)
}

type attempt struct {
	state    State
	lastErr  error
	inFlight bool
}

type registrationService struct {
	client   api.Client
	uploader UploadService
	validate *validator.Validate
	log      logging.Logger

	mu       sync.Mutex
	attempts map[string]*attempt
}

func NewRegistrationService(client api.Client, uploader UploadService, log logging.Logger) RegistrationService {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})
	return &registrationService{
		client:   client,
		uploader: uploader,
		validate: v,
		log:      log,
		attempts: make(map[string]*attempt),
	}
}

func (s *registrationService) Validate(draft *models.RegistrationDraft) error {
	fields := make(map[string]string)

	if err := s.validate.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
	}

	// Numeric form fields hold raw user input; reject what strconv cannot
	// parse before any network call is made.
	switch draft.Role {
	case models.RoleFarmer:
		if draft.LandHandlingCapacity != "" {
			if _, err := strconv.ParseFloat(draft.LandHandlingCapacity, 64); err != nil {
				fields["land_handling_capacity"] = "must be a number"
			}
		}
	case models.RoleLandlord:
		if draft.Acres != "" {
			if v, err := strconv.ParseFloat(draft.Acres, 64); err != nil || v <= 0 {
				fields["acres"] = "must be a positive number"
			}
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_unless":
		return "this field is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "invalid value"
	}
}

func (s *registrationService) Submit(ctx context.Context, draft *models.RegistrationDraft) (int, error) {
	if err := s.Validate(draft); err != nil {
		return 0, err
	}

	if !s.begin(draft.ID) {
		return 0, ErrSubmitInFlight
	}
	defer s.end(draft.ID)

	s.setState(draft.ID, StateSubmitting)

	res, err := s.client.RegisterUser(ctx, draft.Email, draft.Password, draft.Role)
	if err != nil {
		return 0, s.fail(draft.ID, &RegistrationError{Message: "account creation failed", Err: err})
	}
	if res.ID == 0 {
		return 0, s.fail(draft.ID, &RegistrationError{Message: "missing account id"})
	}
	s.setState(draft.ID, StateAccountCreated)
	s.log.Info(ctx, "account created", "user_id", res.ID, "role", draft.Role)

	// Profile calls authorize with the token issued at account creation,
	// not any pre-existing session.
	switch draft.Role {
	case models.RoleAdmin:
		// No profile step for admins.

	case models.RoleFarmer:
		capacity, _ := strconv.ParseFloat(draft.LandHandlingCapacity, 64)
		reg := api.FarmerRegistration{
			UserID:               res.ID,
			PhoneNumber:          draft.PhoneNumber,
			LandHandlingCapacity: capacity,
			PreferredLocations:   draft.SplitLocations(),
		}
		if err := s.client.RegisterFarmer(ctx, res.Token, reg); err != nil {
			return 0, s.fail(draft.ID, &RegistrationError{
				Message: "partial registration: account created, profile failed",
				Partial: true,
				Err:     err,
			})
		}
		s.setState(draft.ID, StateProfileCreated)

	case models.RoleLandlord:
		var urls []string
		if len(draft.Files) > 0 {
			s.setState(draft.ID, StateUploadingAttachments)
			urls, err = s.uploader.Upload(ctx, res.Token, draft.Files)
			if err != nil {
				return 0, s.fail(draft.ID, &RegistrationError{
					Message: "partial registration: account created, images failed",
					Partial: true,
					Err:     err,
				})
			}
		}

		acres, _ := strconv.ParseFloat(draft.Acres, 64)
		reg := api.LandlordRegistration{
			UserID:      res.ID,
			PhoneNumber: draft.PhoneNumber,
			SoilType:    draft.SoilType,
			Acres:       acres,
			Location:    draft.Location,
			Images:      urls,
		}
		if err := s.client.RegisterLandlord(ctx, res.Token, reg); err != nil {
			return 0, s.fail(draft.ID, &RegistrationError{
				Message: "partial registration: account created, profile failed",
				Partial: true,
				Err:     err,
			})
		}
		s.setState(draft.ID, StateProfileCreated)
	}

	s.setState(draft.ID, StateDone)
	return res.ID, nil
}

func (s *registrationService) AddFarmerProfile(ctx context.Context, sess *session.Session, acres float64, previousExperience string) error {
	key := sessionKey(sess)
	if !s.begin(key) {
		return ErrSubmitInFlight
	}
	defer s.end(key)

	s.setState(key, StateSubmitting)

	reg := api.FarmerRegistration{Acres: acres, PreviousExperience: previousExperience}
	if err := s.client.RegisterFarmer(ctx, sess.AccessToken, reg); err != nil {
		return s.fail(key, &RegistrationError{Message: "profile creation failed", Err: err})
	}

	s.setState(key, StateDone)
	return nil
}

func (s *registrationService) AddLandlordProfile(ctx context.Context, sess *session.Session, form models.LandlordForm) error {
	key := sessionKey(sess)
	if !s.begin(key) {
		return ErrSubmitInFlight
	}
	defer s.end(key)

	s.setState(key, StateSubmitting)

	var urls []string
	if len(form.Files) > 0 {
		s.setState(key, StateUploadingAttachments)
		var err error
		urls, err = s.uploader.Upload(ctx, sess.AccessToken, form.Files)
		if err != nil {
			return s.fail(key, &RegistrationError{Message: "profile images upload failed", Err: err})
		}
	}

	reg := api.LandlordRegistration{
		LandType: form.LandType,
		Acres:    form.Acres,
		Location: form.Location,
		Images:   urls,
	}
	if err := s.client.RegisterLandlord(ctx, sess.AccessToken, reg); err != nil {
		return s.fail(key, &RegistrationError{Message: "profile creation failed", Err: err})
	}

	s.setState(key, StateDone)
	return nil
}

func (s *registrationService) Status(key string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at := s.attempts[key]
	if at == nil {
		return StateEditing, nil
	}
	return at.state, at.lastErr
}

func sessionKey(sess *session.Session) string {
	return fmt.Sprintf("user:%d", sess.UserID)
}

// begin marks the attempt in flight, rejecting concurrent submissions for
// the same key.
func (s *registrationService) begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	at := s.attempts[key]
	if at == nil {
		at = &attempt{state: StateEditing}
		s.attempts[key] = at
	}
	if at.inFlight {
		return false
	}
	at.inFlight = true
	at.lastErr = nil
	return true
}

func (s *registrationService) end(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[key].inFlight = false
}

func (s *registrationService) setState(key string, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[key].state = state
}

func (s *registrationService) fail(key string, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	at := s.attempts[key]
	at.state = StateFailed
	at.lastErr = err
	return err
}
