package tools

// monthIndex 英文月份名到序号的映射，用于出版物排序
var monthIndex = map[string]int{
	"January":   1,
	"February":  2,
	"March":     3,
	"April":     4,
	"May":       5,
	"June":      6,
	"July":      7,
	"August":    8,
	"September": 9,
	"October":   10,
	"November":  11,
	"December":  12,
}

// MonthIndex 返回月份序号；无法识别的月份返回 0，排序时落在同年最后
func MonthIndex(name string) int {
	return monthIndex[name]
}
