package constants

// 启发式阈值的默认值。这些数值来源于对真实简历样本的经验调参，
// 没有推导依据，刻意保留原值，可通过配置覆盖但不要"修正"。
const (
	// MinInstitutionConfidence 机构候选项的最低保留置信度
	MinInstitutionConfidence = 0.3
	// MinContextScore 触发专有名词策略所需的教育上下文分数
	MinContextScore = 0.5
	// DefaultMinConfidence AllInstitutions 的默认过滤阈值
	DefaultMinConfidence = 0.5

	// AnalyzerInstitutionConfidence 分析流水线收录机构列表时使用的过滤阈值
	AnalyzerInstitutionConfidence = 0.4

	// MaxSkills 技能抽取结果上限
	MaxSkills = 20
	// MaxJobTitles 职位头衔结果上限
	MaxJobTitles = 5
	// MaxCompanies 公司结果上限
	MaxCompanies = 5

	// MinGraduationYear 毕业年份下界
	MinGraduationYear = 1950
	// GraduationYearSlack 毕业年份上界为当前年份加该偏移
	GraduationYearSlack = 5

	// MinMatchScore 低于该分数的岗位不进入匹配结果
	MinMatchScore = 40
	// MaxJobMatches 匹配结果上限
	MaxJobMatches = 15

	// MinResumeTextLen 可分析文本的最小长度（字符）
	MinResumeTextLen = 50

	// MinSummaryLen 显式总结章节的最小可用长度，短于此则改为合成总结
	MinSummaryLen = 30
	// MaxUploadBytes 上传文件大小上限
	MaxUploadBytes = 10 * 1024 * 1024
	// MaxDocumentPages PDF解码的最大页数
	MaxDocumentPages = 10
)
