// Package profile manages the signed-in vendor's own profile and password.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"dario.cat/mergo"
	"golang.org/x/crypto/bcrypt"

	"github.com/vendorhub/dashboard/internal/feedback"
	"github.com/vendorhub/dashboard/internal/listengine"
)

const entity = "profile"

// Profile is the editable account card.
type Profile struct {
	FirstName string `json:"first_name" validate:"notblank" label:"First name"`
	LastName  string `json:"last_name" validate:"notblank" label:"Last name"`
	Email     string `json:"email" validate:"required,simpleemail" label:"Email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Address   string `json:"address"`
	Bio       string `json:"bio" validate:"max=500" label:"Bio"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// PasswordChange is the change-password form.
type PasswordChange struct {
	Current string `json:"current_password" validate:"required" label:"Current password"`
	New     string `json:"new_password" validate:"min=8" msg:"New password must be at least 8 characters"`
	Confirm string `json:"confirm_password" validate:"eqfield=New" msg:"New password and confirm password do not match."`
}

// Service owns the single profile. All methods are safe for concurrent use.
type Service struct {
	mu       sync.Mutex
	profile  Profile
	hash     []byte
	logger   *slog.Logger
	feedback feedback.Channel
	metrics  listengine.Recorder
}

// NewService seeds the profile and hashes its initial password.
func NewService(initial Profile, password string, deps listengine.StoreDeps) (*Service, error) {
	if err := listengine.ValidateRecord(initial); err != nil {
		return nil, fmt.Errorf("profile seed: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash initial password: %w", err)
	}
	s := &Service{profile: initial, hash: hash, logger: deps.Logger, feedback: deps.Feedback, metrics: deps.Metrics}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.feedback == nil {
		s.feedback = feedback.Discard{}
	}
	return s, nil
}

func (s *Service) Get() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Update overrides every non-empty field of patch onto the profile.
// Empty fields in patch leave the stored value alone.
func (s *Service) Update(ctx context.Context, patch Profile) (Profile, error) {
	s.mu.Lock()
	next := s.profile
	err := mergo.Merge(&next, patch, mergo.WithOverride)
	if err == nil {
		err = listengine.ValidateRecord(next)
	}
	if err == nil {
		s.profile = next
	}
	s.mu.Unlock()

	if err != nil {
		s.reject("update", err, "Please correct the highlighted fields")
		s.notify(ctx, feedback.SeverityError, "Please correct the highlighted fields")
		return Profile{}, err
	}
	s.accept("update")
	s.notify(ctx, feedback.SeveritySuccess, "Profile updated successfully")
	return next, nil
}

// ChangePassword replaces the password after checking the form and the current password.
func (s *Service) ChangePassword(ctx context.Context, req PasswordChange) error {
	if err := listengine.ValidateRecord(req); err != nil {
		text := "Please correct the highlighted fields"
		var verr *listengine.ValidationError
		if errors.As(err, &verr) {
			if msg, ok := verr.Fields["confirm_password"]; ok {
				text = msg
			}
		}
		s.reject("change_password", err, text)
		s.notify(ctx, feedback.SeverityError, text)
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.New), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	if bcrypt.CompareHashAndPassword(s.hash, []byte(req.Current)) != nil {
		s.mu.Unlock()
		err := &listengine.ValidationError{Fields: map[string]string{"current_password": "Current password is incorrect"}}
		s.reject("change_password", err, "Current password is incorrect")
		s.notify(ctx, feedback.SeverityError, "Current password is incorrect")
		return err
	}
	s.hash = hash
	s.mu.Unlock()

	s.accept("change_password")
	s.notify(ctx, feedback.SeveritySuccess, "Password changed successfully!")
	return nil
}

// VerifyPassword reports whether password matches the stored hash.
func (s *Service) VerifyPassword(password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bcrypt.CompareHashAndPassword(s.hash, []byte(password)) == nil
}

func (s *Service) accept(op string) {
	if s.metrics != nil {
		s.metrics.ObserveMutation(entity, op, "applied")
	}
	s.logger.Info("profile mutation applied", slog.String("op", op))
}

func (s *Service) reject(op string, err error, text string) {
	if s.metrics != nil {
		s.metrics.ObserveMutation(entity, op, "rejected")
	}
	s.logger.Warn("profile mutation rejected", slog.String("op", op), slog.String("reason", text), slog.Any("error", err))
}

func (s *Service) notify(ctx context.Context, severity feedback.Severity, text string) {
	if err := s.feedback.Publish(ctx, severity, text); err != nil {
		s.logger.Warn("publish feedback", slog.String("entity", entity), slog.Any("error", err))
	}
}

// Seed is the profile the dashboard starts with.
func Seed() Profile {
	return Profile{
		FirstName: "John",
		LastName:  "Quader",
		Email:     "john.doe@vendor.com",
		Phone:     "+1 (555) 123-4567",
		Company:   "Vendor Hub Ltd.",
		Address:   "123 Business St, City, State 12345",
		Bio:       "Experienced vendor with 10+ years in supply chain management.",
	}
}
