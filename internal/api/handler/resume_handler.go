package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-analyzer-go/internal/analyzer"
	"resume-analyzer-go/internal/config"
	"resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/matcher"
	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/types"
)

// ParserVersion 随分析响应返回的解析器版本号
const ParserVersion = "3.0.0"

// ResumeHandler 简历处理器，协调文档解码、分析和岗位匹配
type ResumeHandler struct {
	cfg      *config.Config
	decoder  *parser.DocumentDecoder
	analyzer *analyzer.Analyzer
	matcher  *matcher.JobMatcher
}

// NewResumeHandler 创建一个新的简历处理器
func NewResumeHandler(cfg *config.Config, decoder *parser.DocumentDecoder, a *analyzer.Analyzer, m *matcher.JobMatcher) *ResumeHandler {
	return &ResumeHandler{
		cfg:      cfg,
		decoder:  decoder,
		analyzer: a,
		matcher:  m,
	}
}

// FeaturesDetected 分析响应中的特征概览
type FeaturesDetected struct {
	HasContactInfo  bool                  `json:"has_contact_info"`
	HasSummary      bool                  `json:"has_summary"`
	SkillsCount     int                   `json:"skills_count"`
	ExperienceYears int                   `json:"experience_years"`
	EducationLevel  string                `json:"education_level"`
	ResumeType      types.ExperienceLevel `json:"resume_type"`
}

// AnalysisMetadata 分析响应元数据
type AnalysisMetadata struct {
	FileName         string           `json:"file_name,omitempty"`
	FileSize         int              `json:"file_size,omitempty"`
	TextLength       int              `json:"text_length"`
	ProcessingTime   string           `json:"processing_time"`
	ParserVersion    string           `json:"parser_version"`
	FeaturesDetected FeaturesDetected `json:"features_detected"`
}

// AnalysisResponse 完整分析响应：分析结果 + 岗位匹配 + 推荐汇总
type AnalysisResponse struct {
	Success         bool                     `json:"success"`
	Analysis        *types.ResumeAnalysis    `json:"analysis"`
	JobMatches      []types.JobMatch         `json:"job_matches"`
	Recommendations types.JobRecommendations `json:"recommendations"`
	Metadata        AnalysisMetadata         `json:"metadata"`
	TextPreview     string                   `json:"text_preview,omitempty"`
}

// HandleResumeUpload 处理简历文件上传：解码文档后走完整分析流程
func (h *ResumeHandler) HandleResumeUpload(ctx context.Context, data []byte, contentType string, filename string) (*AnalysisResponse, error) {
	start := time.Now()

	text, err := h.decoder.ExtractText(ctx, data, contentType)
	if err != nil {
		logger.Error().
			Err(err).
			Str("filename", filename).
			Str("content_type", contentType).
			Msg("文档解码失败")
		return nil, fmt.Errorf("提取文档文本失败: %w", err)
	}
	if len(text) < h.cfg.Document.MinTextLen {
		return nil, fmt.Errorf("无法从文件中提取有效文本，请确认文件未损坏")
	}

	resp, err := h.analyzeText(ctx, text)
	if err != nil {
		return nil, err
	}
	resp.Metadata.FileName = filename
	resp.Metadata.FileSize = len(data)

	logger.Info().
		Str("filename", filename).
		Int("file_size", len(data)).
		Int("score", resp.Analysis.Score).
		Int("matches", len(resp.JobMatches)).
		Dur("elapsed", time.Since(start)).
		Msg("简历上传分析完成")
	return resp, nil
}

// HandleAnalyzeText 处理纯文本分析请求
func (h *ResumeHandler) HandleAnalyzeText(ctx context.Context, text string) (*AnalysisResponse, error) {
	return h.analyzeText(ctx, text)
}

// analyzeText 执行分析、匹配和推荐，组装完整响应
func (h *ResumeHandler) analyzeText(ctx context.Context, text string) (*AnalysisResponse, error) {
	analysis, err := h.analyzer.Analyze(ctx, text, nil)
	if err != nil {
		return nil, fmt.Errorf("简历分析失败: %w", err)
	}

	matches := h.matcher.FindMatches(analysis)
	recommendations := h.matcher.Recommendations(analysis)

	resp := &AnalysisResponse{
		Success:         true,
		Analysis:        analysis,
		JobMatches:      matches,
		Recommendations: recommendations,
		Metadata: AnalysisMetadata{
			TextLength:     len(text),
			ProcessingTime: time.Now().Format(time.RFC3339),
			ParserVersion:  ParserVersion,
			FeaturesDetected: FeaturesDetected{
				HasContactInfo:  analysis.Contact.Name != "" || analysis.Contact.Email != "",
				HasSummary:      analysis.Summary != "",
				SkillsCount:     len(analysis.Skills),
				ExperienceYears: analysis.Experience.Years,
				EducationLevel:  analysis.Education.HighestDegree,
				ResumeType:      analysis.Experience.Level,
			},
		},
	}

	if len(text) > 300 {
		resp.TextPreview = text[:300] + "..."
	} else {
		resp.TextPreview = text
	}
	return resp, nil
}

// ContactResponse 联系方式抽取响应
type ContactResponse struct {
	Success     bool              `json:"success"`
	Contact     types.ContactInfo `json:"contact"`
	ExtractedAt string            `json:"extracted_at"`
	TextLength  int               `json:"text_length"`
}

// HandleExtractContact 处理仅抽取联系方式的请求
func (h *ResumeHandler) HandleExtractContact(ctx context.Context, text string) (*ContactResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &ContactResponse{
		Success:     true,
		Contact:     parser.ExtractContactInfo(text),
		ExtractedAt: time.Now().Format(time.RFC3339),
		TextLength:  len(text),
	}, nil
}

// SkillsResponse 技能抽取响应，含按分类分组的视图
type SkillsResponse struct {
	Success           bool                `json:"success"`
	Skills            []string            `json:"skills"`
	CategorizedSkills map[string][]string `json:"categorized_skills"`
	SkillCount        int                 `json:"skill_count"`
	ExtractedAt       string              `json:"extracted_at"`
}

// HandleExtractSkills 处理仅抽取技能的请求
func (h *ResumeHandler) HandleExtractSkills(ctx context.Context, text string) (*SkillsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	taxonomy := h.analyzer.Taxonomy()
	skills := parser.ExtractSkills(text, taxonomy, h.cfg.Analyzer.MaxSkills)

	categorized := make(map[string][]string)
	for _, skill := range skills {
		category := taxonomy.CategoryOf(skill)
		if category == "" {
			continue
		}
		categorized[category] = append(categorized[category], skill)
	}

	return &SkillsResponse{
		Success:           true,
		Skills:            skills,
		CategorizedSkills: categorized,
		SkillCount:        len(skills),
		ExtractedAt:       time.Now().Format(time.RFC3339),
	}, nil
}

// ValidateUpload 校验上传文件的类型和大小
func (h *ResumeHandler) ValidateUpload(contentType string, size int64) error {
	if !h.decoder.Supports(contentType) {
		return fmt.Errorf("仅支持PDF和DOCX文件，收到: %s", contentType)
	}
	if size > h.cfg.Server.MaxUploadBytes {
		return fmt.Errorf("文件过大，上限为%dMB", h.cfg.Server.MaxUploadBytes/(1024*1024))
	}
	return nil
}

// ValidateText 校验文本分析请求的最小长度
func (h *ResumeHandler) ValidateText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("简历文本不能为空")
	}
	if len(trimmed) < h.cfg.Document.MinTextLen {
		return fmt.Errorf("简历文本过短，至少需要%d个字符", h.cfg.Document.MinTextLen)
	}
	return nil
}
