package handler

import (
	"masterchef-rewards/internal/handler/request"
	"masterchef-rewards/internal/handler/response"
	"masterchef-rewards/internal/service"
	"masterchef-rewards/pkg/errno"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	form *service.Form
}

func NewFormHandler(form *service.Form) *FormHandler {
	return &FormHandler{form: form}
}

// GetForm 当前表单状态
// @Summary 表单状态
// @Description 返回目标合约、模式 (awaiting_target / ready) 以及可见的操作卡片
// @Tags Form
// @Produce json
// @Success 200 {object} response.Response{data=service.FormState}
// @Router /api/v1/form [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	response.Success(c, h.form.State())
}

// SetTarget 设置目标奖励合约地址
// @Summary 设置目标合约
// @Description 非法地址或零地址会让表单回到 awaiting_target，只显示地址输入卡片
// @Tags Form
// @Accept json
// @Produce json
// @Param request body request.SetTargetRequest true "目标合约"
// @Success 200 {object} response.Response{data=service.FormState}
// @Router /api/v1/form/target [put]
func (h *FormHandler) SetTarget(c *gin.Context) {
	var req request.SetTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errno.ErrBind)
		return
	}

	h.form.SetTarget(req.Address)
	response.Success(c, h.form.State())
}
