// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required,min=2,max=100"`
}

type CreateSubjectRequest struct {
	SubjectName       string  `json:"subject_name"        validate:"required,min=2,max=150"`
	SubjectCode       string  `json:"subject_code"        validate:"required,min=2,max=30"`
	SubjectSyllabusID string  `json:"subject_syllabus_id" validate:"required,uuid4"`
	SubjectCategoryID *string `json:"subject_category_id,omitempty" validate:"omitempty,uuid4"`
}
