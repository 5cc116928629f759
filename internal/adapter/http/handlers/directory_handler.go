package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	request "entregaswoo/internal/adapter/http/dto/request"
	response "entregaswoo/internal/adapter/http/dto/response"
	"entregaswoo/internal/usecase"
	"entregaswoo/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStorePayload = pkg.NewDomainErrorSimple("INVALID_STORE_INPUT", "Invalid store payload", http.StatusBadRequest)
)

// DirectoryHandler is the admin surface: stores, pending users, manager
// associations and user removal, plus the self-service profile edit.

type DirectoryHandler struct {
	usecase usecase.IDirectoryUseCase
}

func NewDirectoryHandler(uc usecase.IDirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{usecase: uc}
}

// CreateStore godoc
// @Summary      Register a store
// @Description  Accepts JSON or a multipart form with an optional "logo" file part uploaded to object storage.
// @Tags         directory
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  response.StoreResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /stores [post]
func (h *DirectoryHandler) CreateStore(c *gin.Context) {
	var payload request.StoreRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	logo, file, appErr := bindLogoFile(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if file != nil {
		defer file.Close()
	}

	created, err := h.usecase.CreateStore(c.Request.Context(), payload.ToEntity(), logo)
	if err != nil {
		mapped := mapDirectoryError(err)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromStore(created))
}

// UpdateStore godoc
// @Summary      Edit a store
// @Tags         directory
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "Store ID"
// @Success      200  {object}  response.StoreResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /stores/{id} [put]
func (h *DirectoryHandler) UpdateStore(c *gin.Context) {
	var payload request.StoreUpdateRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	logo, file, appErr := bindLogoFile(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if file != nil {
		defer file.Close()
	}

	updated, err := h.usecase.UpdateStore(c.Request.Context(), c.Param("id"), payload.ToPatch(), logo)
	if err != nil {
		mapped := mapDirectoryError(err)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStore(updated))
}

func bindLogoFile(c *gin.Context) (*usecase.LogoUpload, multipart.File, *pkg.AppError) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		// No file part: a plain JSON edit without logo is valid.
		return nil, nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, errInvalidStorePayload
	}
	logo := &usecase.LogoUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	}
	return logo, file, nil
}

// ListStores godoc
// @Summary      List all stores
// @Tags         directory
// @Produce      json
// @Success      200  {array}  response.StoreResponse
// @Security     Bearer
// @Router       /stores [get]
func (h *DirectoryHandler) ListStores(c *gin.Context) {
	stores, err := h.usecase.ListStores(c.Request.Context())
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStores(stores))
}

// ListPendingUsers godoc
// @Summary      List users awaiting a store association
// @Tags         directory
// @Produce      json
// @Success      200  {array}  response.UserResponse
// @Security     Bearer
// @Router       /users/pending [get]
func (h *DirectoryHandler) ListPendingUsers(c *gin.Context) {
	users, err := h.usecase.ListPendingUsers(c.Request.Context())
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

// AssociateManager godoc
// @Summary      Associate a pending user to a store as manager
// @Tags         directory
// @Accept       json
// @Produce      json
// @Param        payload  body  request.AssociateManagerRequest  true  "User and store"
// @Success      201  {object}  response.AssociationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /associations [post]
func (h *DirectoryHandler) AssociateManager(c *gin.Context) {
	var payload request.AssociateManagerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	assoc, err := h.usecase.AssociateManager(c.Request.Context(), payload.UID, payload.IDLoja)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromAssociation(assoc))
}

// DeleteUser godoc
// @Summary      Remove a user
// @Description  Deletes the identity-provider account best-effort, then the profile row.
// @Tags         directory
// @Produce      json
// @Param        uid  path  string  true  "User UID"
// @Success      204  "No Content"
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /users/{uid} [delete]
func (h *DirectoryHandler) DeleteUser(c *gin.Context) {
	if err := h.usecase.DeleteUser(c.Request.Context(), c.Param("uid")); err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateMyProfile godoc
// @Summary      Edit the calling user's profile
// @Tags         directory
// @Accept       json
// @Produce      json
// @Param        payload  body  request.ProfileUpdateRequest  true  "Profile fields"
// @Success      200  {object}  response.UserResponse
// @Failure      401  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /users/me [patch]
func (h *DirectoryHandler) UpdateMyProfile(c *gin.Context) {
	var payload request.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sess := SessionFrom(c)
	user, err := h.usecase.UpdateProfile(c.Request.Context(), sess.UID, payload.NomeCompleto, payload.Telefone, payload.TelegramChatID)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapDirectoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreID), errors.Is(err, usecase.ErrInvalidStoreName), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreAlreadyExists):
		return pkg.NewDomainErrorSimple("STORE_ALREADY_EXISTS", "Store already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
