package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

const errWalletRequired = "Wallet address required"

func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), dto.ErrorResponse{Error: apperrors.PublicMessage(err)})
}
