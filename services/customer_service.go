package services

import (
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"

	"github.com/airavatatech/mings-backend/models"
	"github.com/airavatatech/mings-backend/utils"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")

	ErrInvalidName  = errors.New("name must contain only letters and spaces")
	ErrInvalidPhone = errors.New("phone number must be 10-15 digits")
	ErrInvalidDOB   = errors.New("date of birth must be a valid date in YYYY-MM-DD format and not in the future")
)

var (
	nameRegex  = regexp.MustCompile(`^[A-Za-z ]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// CustomerService manages customer records keyed by phone number.
type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (cs *CustomerService) FindByPhone(phoneNumber string) (*models.Customer, error) {
	var customer models.Customer
	if err := cs.DB.Where("phone_number = ?", phoneNumber).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// Register creates a customer with visits = 0. The phone number carries a
// unique index; when a concurrent registration wins the insert race the
// existing record is fetched and returned instead of a duplicate.
func (cs *CustomerService) Register(name, phoneNumber string, dateOfBirth *string) (*models.Customer, error) {
	if name == "" || !nameRegex.MatchString(name) {
		return nil, ErrInvalidName
	}
	if !phoneRegex.MatchString(phoneNumber) {
		return nil, ErrInvalidPhone
	}
	if dateOfBirth != nil {
		if err := validateDateOfBirth(*dateOfBirth); err != nil {
			return nil, err
		}
	}

	customer := models.Customer{
		Name:        name,
		PhoneNumber: phoneNumber,
		DateOfBirth: dateOfBirth,
		Visits:      0,
	}

	if err := cs.DB.Create(&customer).Error; err != nil {
		// Unique index violation means another registration won the race.
		if existing, findErr := cs.FindByPhone(phoneNumber); findErr == nil {
			utils.InfoLogger.Printf("Customer %s already registered, returning existing record", phoneNumber)
			return existing, nil
		}
		return nil, err
	}

	utils.InfoLogger.Printf("New customer registered: %s", phoneNumber)
	return &customer, nil
}

// IncrementVisits adds 1 to the visit counter in a single UPDATE so that
// concurrent calls never lose an increment, then returns the fresh record.
func (cs *CustomerService) IncrementVisits(phoneNumber string) (*models.Customer, error) {
	result := cs.DB.Model(&models.Customer{}).
		Where("phone_number = ?", phoneNumber).
		UpdateColumns(map[string]interface{}{
			"visits":     gorm.Expr("visits + ?", 1),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCustomerNotFound
	}

	return cs.FindByPhone(phoneNumber)
}

// ListAll returns every customer, most frequent visitors first.
func (cs *CustomerService) ListAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := cs.DB.Order("visits DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// PurgeAll removes every customer record. Administrative maintenance only.
func (cs *CustomerService) PurgeAll() (int64, error) {
	result := cs.DB.Where("1 = 1").Delete(&models.Customer{})
	if result.Error != nil {
		return 0, result.Error
	}
	utils.InfoLogger.Printf("Purged %d customer records", result.RowsAffected)
	return result.RowsAffected, nil
}

func validateDateOfBirth(value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return ErrInvalidDOB
	}

	// ISO dates compare correctly as strings; today itself is allowed.
	today := time.Now().Format("2006-01-02")
	if value > today {
		return ErrInvalidDOB
	}
	return nil
}
