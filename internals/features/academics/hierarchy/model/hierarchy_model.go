// file: internals/features/academics/hierarchy/model/hierarchy_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Hierarki akademik:
   Department → Level → Program → Course → Semester → Syllabus
   Semua record sederhana dengan referensi parent +
   unique constraint per parent.
   ======================================================= */

type DepartmentModel struct {
	DepartmentID   uuid.UUID `json:"department_id" gorm:"type:uuid;primaryKey;column:department_id;default:gen_random_uuid()"`
	DepartmentName string    `json:"department_name" gorm:"type:varchar(150);not null;uniqueIndex:uq_departments_name;column:department_name"`

	DepartmentCreatedAt time.Time `json:"department_created_at" gorm:"column:department_created_at;not null;autoCreateTime"`
	DepartmentUpdatedAt time.Time `json:"department_updated_at" gorm:"column:department_updated_at;not null;autoUpdateTime"`
}

func (DepartmentModel) TableName() string { return "departments" }

type LevelModel struct {
	LevelID           uuid.UUID `json:"level_id" gorm:"type:uuid;primaryKey;column:level_id;default:gen_random_uuid()"`
	LevelName         string    `json:"level_name" gorm:"type:varchar(150);not null;uniqueIndex:uq_levels_name_department;column:level_name"`
	LevelDepartmentID uuid.UUID `json:"level_department_id" gorm:"type:uuid;not null;uniqueIndex:uq_levels_name_department;index;column:level_department_id"`

	LevelCreatedAt time.Time `json:"level_created_at" gorm:"column:level_created_at;not null;autoCreateTime"`
	LevelUpdatedAt time.Time `json:"level_updated_at" gorm:"column:level_updated_at;not null;autoUpdateTime"`
}

func (LevelModel) TableName() string { return "levels" }

type ProgramModel struct {
	ProgramID      uuid.UUID `json:"program_id" gorm:"type:uuid;primaryKey;column:program_id;default:gen_random_uuid()"`
	ProgramName    string    `json:"program_name" gorm:"type:varchar(150);not null;uniqueIndex:uq_programs_name_level;column:program_name"`
	ProgramLevelID uuid.UUID `json:"program_level_id" gorm:"type:uuid;not null;uniqueIndex:uq_programs_name_level;index;column:program_level_id"`

	ProgramCreatedAt time.Time `json:"program_created_at" gorm:"column:program_created_at;not null;autoCreateTime"`
	ProgramUpdatedAt time.Time `json:"program_updated_at" gorm:"column:program_updated_at;not null;autoUpdateTime"`
}

func (ProgramModel) TableName() string { return "programs" }

type CourseModel struct {
	CourseID        uuid.UUID `json:"course_id" gorm:"type:uuid;primaryKey;column:course_id;default:gen_random_uuid()"`
	CourseName      string    `json:"course_name" gorm:"type:varchar(150);not null;uniqueIndex:uq_courses_name_program;column:course_name"`
	CourseProgramID uuid.UUID `json:"course_program_id" gorm:"type:uuid;not null;uniqueIndex:uq_courses_name_program;index;column:course_program_id"`

	CourseCreatedAt time.Time `json:"course_created_at" gorm:"column:course_created_at;not null;autoCreateTime"`
	CourseUpdatedAt time.Time `json:"course_updated_at" gorm:"column:course_updated_at;not null;autoUpdateTime"`
}

func (CourseModel) TableName() string { return "courses" }

type SemesterModel struct {
	SemesterID       uuid.UUID `json:"semester_id" gorm:"type:uuid;primaryKey;column:semester_id;default:gen_random_uuid()"`
	SemesterName     string    `json:"semester_name" gorm:"type:varchar(150);not null;uniqueIndex:uq_semesters_name_course;column:semester_name"`
	SemesterCourseID uuid.UUID `json:"semester_course_id" gorm:"type:uuid;not null;uniqueIndex:uq_semesters_name_course;index;column:semester_course_id"`

	SemesterCreatedAt time.Time `json:"semester_created_at" gorm:"column:semester_created_at;not null;autoCreateTime"`
	SemesterUpdatedAt time.Time `json:"semester_updated_at" gorm:"column:semester_updated_at;not null;autoUpdateTime"`
}

func (SemesterModel) TableName() string { return "semesters" }

type SyllabusModel struct {
	SyllabusID         uuid.UUID `json:"syllabus_id" gorm:"type:uuid;primaryKey;column:syllabus_id;default:gen_random_uuid()"`
	SyllabusName       string    `json:"syllabus_name" gorm:"type:varchar(150);not null;uniqueIndex:uq_syllabuses_name_semester;column:syllabus_name"`
	SyllabusSemesterID uuid.UUID `json:"syllabus_semester_id" gorm:"type:uuid;not null;uniqueIndex:uq_syllabuses_name_semester;index;column:syllabus_semester_id"`

	SyllabusCreatedAt time.Time `json:"syllabus_created_at" gorm:"column:syllabus_created_at;not null;autoCreateTime"`
	SyllabusUpdatedAt time.Time `json:"syllabus_updated_at" gorm:"column:syllabus_updated_at;not null;autoUpdateTime"`
}

func (SyllabusModel) TableName() string { return "syllabuses" }
