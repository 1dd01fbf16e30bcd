package domain

type FormPublished struct {
	FormID    string `json:"formId"`
	Name      string `json:"name"`
	Framework string `json:"framework"`
}
type FormUpdated struct {
	FormID string `json:"formId"`
}
type FormDeleted struct {
	FormID string `json:"formId"`
}
