package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/minimarket/user-service/internal/application"
	"github.com/minimarket/user-service/internal/domain/entity"
	repo "github.com/minimarket/user-service/internal/domain/repository"
	"github.com/minimarket/user-service/pkg/response"
	"github.com/minimarket/user-service/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	UserID      string `json:"userId"`
	OwnerID     string `json:"ownerId"`
	Firstname   string `json:"firstname" binding:"required"`
	Lastname    string `json:"lastname"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	IsAdmin     bool   `json:"isAdmin"`
	IsSeller    bool   `json:"isSeller"`
}

// GetByID handles GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetAll handles GET /users/all; an empty collection yields an empty array.
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetByEmail handles GET /users/byEmail?email=<e>
func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error(c, http.StatusBadRequest, "email is required", nil)
		return
	}
	u, err := h.Svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Create handles POST /users. The plaintext password in the body is
// replaced by the derived hash before the record is persisted.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u := &entity.User{
		UserID:      req.UserID,
		OwnerID:     req.OwnerID,
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Email:       req.Email,
		Password:    req.Password,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		IsAdmin:     req.IsAdmin,
		IsSeller:    req.IsSeller,
	}
	created, err := h.Svc.Create(c.Request.Context(), u)
	if err != nil {
		if errors.Is(err, userapp.ErrMissingFields) {
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.storeError(c, err)
		return
	}
	c.Header("Location", c.FullPath()+"/"+created.ID.Hex())
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /users/:id: whole-record replace, empty body on success.
func (h *UserHandler) Update(c *gin.Context) {
	var u entity.User
	if err := c.ShouldBindJSON(&u); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.Update(c.Request.Context(), c.Param("id"), &u); err != nil {
		h.storeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// storeError maps typed repository outcomes to status codes: 404 for no
// match, 409 strictly for duplicate-key rejections, 500 for anything the
// store could not serve.
func (h *UserHandler) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		response.Error(c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, repo.ErrDuplicate):
		response.Error(c, http.StatusConflict, "user already exists", nil)
	default:
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("store operation failed")
		response.Error(c, http.StatusInternalServerError, "store unavailable", nil)
	}
}
