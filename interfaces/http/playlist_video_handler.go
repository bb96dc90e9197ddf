package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"mytube-channels/domain/dto"
	"mytube-channels/infrastructure/logger"
	"mytube-channels/usecase"
)

type IPlaylistVideoHandler interface {
	Create(c *gin.Context)
	GetByID(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	GetAll(c *gin.Context)
}

type PlaylistVideoHandler struct {
	playlistVideoUsecase usecase.IPlaylistVideoUsecase
}

func NewPlaylistVideoHandler(playlistVideoUsecase usecase.IPlaylistVideoUsecase) IPlaylistVideoHandler {
	return &PlaylistVideoHandler{playlistVideoUsecase: playlistVideoUsecase}
}

func (h *PlaylistVideoHandler) Create(c *gin.Context) {
	var req dto.PlaylistVideoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.playlistVideoUsecase.Save(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *PlaylistVideoHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.playlistVideoUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Update surfaces the usecase's absent result as 404 without treating it as a
// server-side failure.
func (h *PlaylistVideoHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.PlaylistVideoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.playlistVideoUsecase.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Message:   "nothing to update",
			Timestamp: time.Now().UTC(),
		})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *PlaylistVideoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.playlistVideoUsecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlaylistVideoHandler) GetAll(c *gin.Context) {
	page, size := pageParams(c)
	res, err := h.playlistVideoUsecase.GetAll(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
