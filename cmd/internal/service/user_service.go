package service

import (
	"strings"

	"goldcredit/cmd/internal/contract"
	"goldcredit/cmd/internal/domain/entity"
	"goldcredit/cmd/internal/utils"
	"goldcredit/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

type DefaultUserService struct {
	UserRepo    UserRepository
	Validate    *validator.Validate
	EmailDomain string
	JWTSecret   []byte
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, emailDomain, jwtSecret string) *DefaultUserService {
	return &DefaultUserService{
		UserRepo:    userRepo,
		Validate:    validate,
		EmailDomain: emailDomain,
		JWTSecret:   []byte(jwtSecret),
	}
}

func (s *DefaultUserService) Register(req *contract.RegisterRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	req.Email = strings.ToLower(req.Email)

	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if !strings.HasSuffix(req.Email, "@"+s.EmailDomain) {
		return nil, apierror.NewEmailDomainError(s.EmailDomain)
	}

	exists, err := s.UserRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check email %s: %v", req.Email, err)
		return nil, apierror.InternalServerError
	}

	if exists {
		return nil, apierror.EmailTakenError
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	user := &entity.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    utils.NowUTC(),
	}

	if err := s.UserRepo.Save(user); err != nil {
		log.Errorf("failed to save user: %v", err)
		return nil, apierror.InternalServerError
	}
	return toUserResponse(user), nil
}

func (s *DefaultUserService) Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	req.Email = strings.ToLower(req.Email)

	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := s.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user %s: %v", req.Email, err)
		return nil, apierror.InternalServerError
	}

	if user == nil || !user.Active {
		return nil, apierror.CredentialsMismatchError
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apierror.CredentialsMismatchError
	}

	token, err := utils.GenerateToken(s.JWTSecret, user)
	if err != nil {
		log.Errorf("failed to sign token for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	user.LastLogin = utils.NowUTC()
	if err := s.UserRepo.Save(user); err != nil {
		// Login still succeeds, the timestamp is informational.
		log.Warnf("failed to update last login for user %d: %v", user.ID, err)
	}

	return &contract.LoginResponse{AccessToken: token}, nil
}

// EnsureAdmin creates the bootstrap administrator account when it does
// not exist yet. A blank password skips the bootstrap entirely.
func (s *DefaultUserService) EnsureAdmin(email, password string) error {
	if password == "" {
		log.Warn("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	exists, err := s.UserRepo.ExistsByEmail(email)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
		IsAdmin:      true,
		Active:       true,
		CreatedAt:    utils.NowUTC(),
	}

	if err := s.UserRepo.Save(admin); err != nil {
		return err
	}

	log.Infof("admin user created: %s", email)
	return nil
}

func toUserResponse(user *entity.User) *contract.UserResponse {
	return &contract.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
	}
}
