// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   CategoryModel: pengelompokan subject (teori/praktikum dst)
   ======================================================= */

type CategoryModel struct {
	CategoryID   uuid.UUID `json:"category_id" gorm:"type:uuid;primaryKey;column:category_id;default:gen_random_uuid()"`
	CategoryName string    `json:"category_name" gorm:"type:varchar(100);not null;uniqueIndex:uq_categories_name;column:category_name"`

	CategoryCreatedAt time.Time `json:"category_created_at" gorm:"column:category_created_at;not null;autoCreateTime"`
	CategoryUpdatedAt time.Time `json:"category_updated_at" gorm:"column:category_updated_at;not null;autoUpdateTime"`
}

func (CategoryModel) TableName() string { return "categories" }

/* =======================================================
   SubjectModel: mata kuliah di sebuah syllabus
   ======================================================= */

type SubjectModel struct {
	SubjectID uuid.UUID `json:"subject_id" gorm:"type:uuid;primaryKey;column:subject_id;default:gen_random_uuid()"`

	SubjectName string `json:"subject_name" gorm:"type:varchar(150);not null;column:subject_name"`
	SubjectCode string `json:"subject_code" gorm:"type:varchar(30);not null;uniqueIndex:uq_subjects_code_syllabus;column:subject_code"`

	SubjectSyllabusID uuid.UUID  `json:"subject_syllabus_id" gorm:"type:uuid;not null;uniqueIndex:uq_subjects_code_syllabus;index;column:subject_syllabus_id"`
	SubjectCategoryID *uuid.UUID `json:"subject_category_id,omitempty" gorm:"type:uuid;column:subject_category_id"`

	SubjectCreatedAt time.Time `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time `json:"subject_updated_at" gorm:"column:subject_updated_at;not null;autoUpdateTime"`
}

func (SubjectModel) TableName() string { return "subjects" }
