package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/airavatatech/mings-backend/services"
	"github.com/airavatatech/mings-backend/utils"
)

type CustomerController struct {
	Customers *services.CustomerService
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{Customers: services.NewCustomerService(db)}
}

// GetCustomerByPhone -> GET /api/customers/phone/:phoneNumber
func (cc *CustomerController) GetCustomerByPhone(c *gin.Context) {
	phoneNumber := c.Param("phoneNumber")

	customer, err := cc.Customers.FindByPhone(phoneNumber)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// RegisterCustomer -> POST /api/customers
func (cc *CustomerController) RegisterCustomer(c *gin.Context) {
	type reqBody struct {
		Name        string  `json:"name" binding:"required"`
		PhoneNumber string  `json:"phoneNumber" binding:"required"`
		DateOfBirth *string `json:"dateOfBirth"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.Customers.Register(req.Name, req.PhoneNumber, req.DateOfBirth)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidName),
			errors.Is(err, services.ErrInvalidPhone),
			errors.Is(err, services.ErrInvalidDOB):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Customer registered", customer)
}

// RecordVisit -> POST /api/customers/visit/:phoneNumber
func (cc *CustomerController) RecordVisit(c *gin.Context) {
	phoneNumber := c.Param("phoneNumber")

	customer, err := cc.Customers.IncrementVisits(phoneNumber)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Visit recorded", customer)
}

// GetAllCustomers -> GET /api/customers (admin)
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Customers.ListAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// PurgeCustomers -> DELETE /api/customers (admin)
func (cc *CustomerController) PurgeCustomers(c *gin.Context) {
	count, err := cc.Customers.PurgeAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customers purged", gin.H{"deleted": count})
}
