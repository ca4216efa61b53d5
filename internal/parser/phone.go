package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// 电话号码模式，按优先级排列：国际格式、纯数字串、分组数字、
// 带标签前缀、各国家/地区的典型写法
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\+\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,6})`),
	regexp.MustCompile(`(\+\d{1,4}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,6})`),
	regexp.MustCompile(`(\d{10,15})`),
	regexp.MustCompile(`(\d{3,5}[-.\s]\d{3,4}[-.\s]\d{3,6})`),
	regexp.MustCompile(`(\d{2,4}[-.\s]\d{3,4}[-.\s]\d{3,4}[-.\s]\d{2,4})`),
	regexp.MustCompile(`(\(\d{2,4}\)[-.\s]?\d{3,4}[-.\s]?\d{3,6})`),
	regexp.MustCompile(`(\d{2,4}[-.\s]?\(\d{2,4}\)[-.\s]?\d{3,6})`),
	regexp.MustCompile(`(?i)(?:phone|mobile|tel|cell|contact)[:.]?\s*(\+?[\d\s\-().]{8,20})`),
	regexp.MustCompile(`(\d{4,5}\s\d{3}\s\d{3,4})`),
	regexp.MustCompile(`(\d{2,3}\s\d{4}\s\d{4})`),
	regexp.MustCompile(`(\d{3}\s\d{3}\s\d{4})`),
	regexp.MustCompile(`(\d{2}[-.\s]\d{2}[-.\s]\d{2}[-.\s]\d{2}[-.\s]\d{2})`),
	regexp.MustCompile(`(\d{3}[-.\s]\d{3}[-.\s]\d{2}[-.\s]\d{2})`),
	regexp.MustCompile(`(\d{3}[-.\s]\d{4}[-.\s]\d{4})`),
	regexp.MustCompile(`(\d{2}[-.\s]\d{4}[-.\s]\d{4})`),
	regexp.MustCompile(`(\+91[-.\s]\d{5}[-.\s]\d{5})`),
	regexp.MustCompile(`(\+44[-.\s]\d{4}[-.\s]\d{6})`),
	regexp.MustCompile(`(\+33[-.\s]\d[-.\s]\d{2}[-.\s]\d{2}[-.\s]\d{2}[-.\s]\d{2})`),
	regexp.MustCompile(`(\+49[-.\s]\d{3}[-.\s]\d{3}[-.\s]\d{4})`),
	regexp.MustCompile(`(\+86[-.\s]\d{3}[-.\s]\d{4}[-.\s]\d{4})`),
	regexp.MustCompile(`(\+81[-.\s]\d{2}[-.\s]\d{4}[-.\s]\d{4})`),
	regexp.MustCompile(`(\+7[-.\s]\d{3}[-.\s]\d{3}[-.\s]\d{2}[-.\s]\d{2})`),
}

var (
	nonDigitPlusRegex = regexp.MustCompile(`[^\d+]`)
	nonDigitRegex     = regexp.MustCompile(`\D`)
	separatorRunRegex = regexp.MustCompile(`[-.\s]{2,}`)
	digitOnlyRunRegex = regexp.MustCompile(`^\d{11,15}$`)
)

// ExtractPhone 按模式链抽取电话号码
// 第一个清洗后合法的匹配即为结果；没有任何模式产出合法号码时返回空
func ExtractPhone(text string) string {
	for _, re := range phonePatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			if cleaned := cleanPhone(match[1]); cleaned != "" {
				return cleaned
			}
		}
	}
	return ""
}

// cleanPhone 清洗并格式化单个原始匹配
// 去掉非数字字符后位数必须在[7,15]，否则判为无效；
// 位数>10且无国家码前缀时补"+"按国际格式处理
func cleanPhone(phone string) string {
	if phone == "" {
		return ""
	}
	digitsOnly := nonDigitPlusRegex.ReplaceAllString(phone, "")
	digitCount := len(strings.ReplaceAll(digitsOnly, "+", ""))
	if digitCount < 7 || digitCount > 15 {
		return ""
	}

	cleaned := strings.TrimSpace(phone)
	cleaned = whitespaceRegex.ReplaceAllString(cleaned, " ")
	cleaned = separatorRunRegex.ReplaceAllString(cleaned, "-")

	if digitCount > 10 && !strings.HasPrefix(cleaned, "+") && digitOnlyRunRegex.MatchString(digitsOnly) {
		cleaned = "+" + digitsOnly
	}
	if strings.HasPrefix(cleaned, "+") {
		return formatInternationalPhone(cleaned)
	}
	return formatDomesticPhone(cleaned, digitCount)
}

// formatInternationalPhone 按已识别的国家码重排分组，未识别时原样返回
func formatInternationalPhone(phone string) string {
	phone = whitespaceRegex.ReplaceAllString(strings.TrimSpace(phone), " ")
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return fmt.Sprintf("+1 %s %s %s", digits[1:4], digits[4:7], digits[7:])
	case len(digits) == 12 && strings.HasPrefix(digits, "61"):
		return fmt.Sprintf("+61 %s %s %s", digits[2:3], digits[3:7], digits[7:])
	case len(digits) == 12 && strings.HasPrefix(digits, "44"):
		return fmt.Sprintf("+44 %s %s", digits[2:6], digits[6:])
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		return fmt.Sprintf("+91 %s %s", digits[2:7], digits[7:])
	case len(digits) == 13 && strings.HasPrefix(digits, "33"):
		return fmt.Sprintf("+33 %s %s %s %s %s", digits[2:3], digits[3:5], digits[5:7], digits[7:9], digits[9:])
	case len(digits) == 12 && strings.HasPrefix(digits, "49"):
		return fmt.Sprintf("+49 %s %s %s", digits[2:5], digits[5:8], digits[8:])
	case len(digits) == 13 && strings.HasPrefix(digits, "86"):
		return fmt.Sprintf("+86 %s %s %s", digits[2:5], digits[5:9], digits[9:])
	case len(digits) == 12 && strings.HasPrefix(digits, "81"):
		return fmt.Sprintf("+81 %s %s %s", digits[2:4], digits[4:8], digits[8:])
	}
	return phone
}

// formatDomesticPhone 按总位数选择固定分组方式
func formatDomesticPhone(phone string, digitCount int) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	switch digitCount {
	case 10:
		// 已有括号分组的保持原样
		if strings.Contains(phone, "(") && strings.Contains(phone, ")") {
			return phone
		}
		return fmt.Sprintf("%s %s %s", digits[:3], digits[3:6], digits[6:])
	case 11:
		if strings.HasPrefix(digits, "1") {
			return fmt.Sprintf("1 %s %s %s", digits[1:4], digits[4:7], digits[7:])
		}
		return fmt.Sprintf("%s %s %s", digits[:3], digits[3:7], digits[7:])
	case 9:
		return fmt.Sprintf("%s %s %s", digits[:3], digits[3:6], digits[6:])
	case 8:
		return fmt.Sprintf("%s %s", digits[:4], digits[4:])
	}
	return strings.TrimSpace(phone)
}
