package parser

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-analyzer-go/internal/constants"
)

// 支持的文档MIME类型
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// DocumentExtractor 文档文本提取器接口
type DocumentExtractor interface {
	// ExtractText 从字节数组提取纯文本
	ExtractText(ctx context.Context, data []byte) (string, error)

	// ContentType 返回该提取器支持的MIME类型
	ContentType() string
}

var (
	multiBlankRegex = regexp.MustCompile(`\n\s*\n`)
	spaceTabRegex   = regexp.MustCompile(`[ \t]+`)
	// 保留字母数字、空白以及简历中常见的分隔符号，其余替换为空格
	strayCharRegex = regexp.MustCompile(`[^\p{L}\p{N}_\s@.,()|\-/+:]`)
)

// CleanText 规整提取出的原始文本：折叠空行、压缩空白、剔除杂散字符
func CleanText(text string) string {
	text = multiBlankRegex.ReplaceAllString(text, "\n\n")
	text = spaceTabRegex.ReplaceAllString(text, " ")
	text = strayCharRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// PDFExtractor 基于ledongthuc/pdf的PDF文本提取器
type PDFExtractor struct {
	// 最多处理的页数，超出部分忽略
	maxPages int
}

// PDFOption 定义PDF提取器配置选项函数
type PDFOption func(*PDFExtractor)

// WithMaxPages 配置最多处理的页数
func WithMaxPages(n int) PDFOption {
	return func(e *PDFExtractor) {
		if n > 0 {
			e.maxPages = n
		}
	}
}

// 确保PDFExtractor实现了DocumentExtractor接口
var _ DocumentExtractor = (*PDFExtractor)(nil)

// NewPDFExtractor 创建一个新的PDF文本提取器
func NewPDFExtractor(options ...PDFOption) *PDFExtractor {
	e := &PDFExtractor{maxPages: constants.MaxDocumentPages}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// ContentType 实现DocumentExtractor接口
func (e *PDFExtractor) ContentType() string {
	return ContentTypePDF
}

// ExtractText 逐页提取PDF文本并做清理，空页跳过
func (e *PDFExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("读取PDF失败: %w", err)
	}

	var sb strings.Builder
	pages := reader.NumPage()
	if pages > e.maxPages {
		pages = e.maxPages
	}
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	text := CleanText(sb.String())
	if text == "" {
		return "", fmt.Errorf("PDF中未提取到任何文本")
	}
	return text, nil
}

// DocxExtractor 基于nguyenthenguyen/docx的DOCX文本提取器
type DocxExtractor struct{}

// 确保DocxExtractor实现了DocumentExtractor接口
var _ DocumentExtractor = (*DocxExtractor)(nil)

// NewDocxExtractor 创建一个新的DOCX文本提取器
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// ContentType 实现DocumentExtractor接口
func (e *DocxExtractor) ContentType() string {
	return ContentTypeDocx
}

// ExtractText 提取DOCX文档正文并剥离XML标签
func (e *DocxExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("读取DOCX失败: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	text := CleanText(stripXMLTags(content))
	if text == "" {
		return "", fmt.Errorf("DOCX中未提取到任何文本")
	}
	return text, nil
}

var (
	xmlTagRegex       = regexp.MustCompile(`<[^>]+>`)
	xmlParagraphRegex = regexp.MustCompile(`</w:p>`)
)

// stripXMLTags 把段落结束标签换成换行后剥离全部XML标签
func stripXMLTags(content string) string {
	content = xmlParagraphRegex.ReplaceAllString(content, "\n")
	return xmlTagRegex.ReplaceAllString(content, "")
}

// DocumentDecoder 按MIME类型分发到对应提取器
type DocumentDecoder struct {
	extractors map[string]DocumentExtractor
}

// NewDocumentDecoder 创建一个注册了PDF和DOCX提取器的解码器
func NewDocumentDecoder(options ...PDFOption) *DocumentDecoder {
	d := &DocumentDecoder{extractors: make(map[string]DocumentExtractor)}
	d.Register(NewPDFExtractor(options...))
	d.Register(NewDocxExtractor())
	return d
}

// Register 注册一个提取器，同类型后注册者覆盖先注册者
func (d *DocumentDecoder) Register(e DocumentExtractor) {
	d.extractors[e.ContentType()] = e
}

// Supports 判断MIME类型是否受支持
func (d *DocumentDecoder) Supports(contentType string) bool {
	_, ok := d.extractors[normalizeContentType(contentType)]
	return ok
}

// ExtractText 按MIME类型选择提取器并提取文本
func (d *DocumentDecoder) ExtractText(ctx context.Context, data []byte, contentType string) (string, error) {
	extractor, ok := d.extractors[normalizeContentType(contentType)]
	if !ok {
		return "", fmt.Errorf("不支持的文件类型: %s", contentType)
	}
	return extractor.ExtractText(ctx, data)
}

// normalizeContentType 去掉诸如 "; charset=utf-8" 的参数部分
func normalizeContentType(contentType string) string {
	if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
