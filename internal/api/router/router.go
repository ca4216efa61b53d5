package router

import (
	"context"
	"io"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-analyzer-go/internal/api/handler"
)

// textRequest 纯文本接口的请求体
type textRequest struct {
	Text string `json:"text"`
}

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler, jobHandler *handler.JobHandler) {
	api := h.Group("/api/v1")

	api.POST("/resume/upload", func(c context.Context, ctx *app.RequestContext) {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if err := resumeHandler.ValidateUpload(contentType, fileHeader.Size); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "读取文件失败"})
			return
		}

		resp, err := resumeHandler.HandleResumeUpload(c, data, contentType, fileHeader.Filename)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/resume/analyze", func(c context.Context, ctx *app.RequestContext) {
		var req textRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
			return
		}
		if err := resumeHandler.ValidateText(req.Text); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
			return
		}

		resp, err := resumeHandler.HandleAnalyzeText(c, req.Text)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/resume/contact", func(c context.Context, ctx *app.RequestContext) {
		var req textRequest
		if err := ctx.BindJSON(&req); err != nil || req.Text == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "简历文本不能为空"})
			return
		}

		resp, err := resumeHandler.HandleExtractContact(c, req.Text)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/resume/skills", func(c context.Context, ctx *app.RequestContext) {
		var req textRequest
		if err := ctx.BindJSON(&req); err != nil || req.Text == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "简历文本不能为空"})
			return
		}

		resp, err := resumeHandler.HandleExtractSkills(c, req.Text)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/jobs/search", jobHandler.HandleSearchJobs)
	api.GET("/skills", jobHandler.HandleSupportedSkills)

	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
