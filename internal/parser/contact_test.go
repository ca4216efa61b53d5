package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	text := "John Smith\njohn.smith@example.com\nSoftware Developer"
	assert.Equal(t, "John Smith", ExtractName(text), "首行的两个大写单词应被识别为姓名")
}

func TestExtractNameSkipsStructuralLines(t *testing.T) {
	text := "RESUME\nCurriculum Vitae\nJane Brown\njane@example.com"
	assert.Equal(t, "Jane Brown", ExtractName(text), "应跳过RESUME/CV等结构行")
}

func TestExtractNameLabeled(t *testing.T) {
	text := "Personal Details\nName: Alice Johnson\nPhone: 0412 345 678"
	assert.Equal(t, "Alice Johnson", ExtractName(text), "应支持Name:标签格式")
}

func TestExtractNameMissing(t *testing.T) {
	assert.Equal(t, "", ExtractName(""), "空文本应返回空姓名")
	assert.Equal(t, "", ExtractName("1234\n5678"), "纯数字文本不应识别出姓名")
}

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@example.co.uk",
		ExtractEmail("Contact me at Jane.Doe@Example.co.uk for details"),
		"裸邮箱应被识别并统一转小写")

	assert.Equal(t, "bob@test.org",
		ExtractEmail("Email: bob@test.org\nPhone: 123"),
		"带标签的邮箱应优先匹配")

	assert.Equal(t, "", ExtractEmail("no email here"), "无邮箱时应返回空")
	assert.Equal(t, "", ExtractEmail("broken@@example"), "畸形地址不应通过校验")
}

func TestExtractLocation(t *testing.T) {
	text := "John Smith\nMelbourne, VIC\njohn@example.com"
	assert.Equal(t, "Melbourne, VIC", ExtractLocation(text), "城市+州缩写形状应被识别")

	assert.Equal(t, "", ExtractLocation("no location in this text"), "无地址时应返回空")
}

func TestExtractContactInfoIndependence(t *testing.T) {
	// 只有邮箱的文本：其余字段独立留空
	contact := ExtractContactInfo("reach me: someone@example.com")
	assert.Equal(t, "someone@example.com", contact.Email, "邮箱应被抽取")
	assert.Equal(t, "", contact.Name, "姓名缺失应留空而非报错")
	assert.Equal(t, "", contact.Location, "地址缺失应留空而非报错")
}
