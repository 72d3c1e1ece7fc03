// file: internals/features/academics/hierarchy/dto/hierarchy_dto.go
package dto

/* =======================================================
   Request DTOs: semua entity hierarki bentuknya sama:
   nama + (opsional) parent id
   ======================================================= */

type CreateDepartmentRequest struct {
	DepartmentName string `json:"department_name" validate:"required,min=2,max=150"`
}

type CreateLevelRequest struct {
	LevelName         string `json:"level_name"          validate:"required,min=2,max=150"`
	LevelDepartmentID string `json:"level_department_id" validate:"required,uuid4"`
}

type CreateProgramRequest struct {
	ProgramName    string `json:"program_name"     validate:"required,min=2,max=150"`
	ProgramLevelID string `json:"program_level_id" validate:"required,uuid4"`
}

type CreateCourseRequest struct {
	CourseName      string `json:"course_name"       validate:"required,min=2,max=150"`
	CourseProgramID string `json:"course_program_id" validate:"required,uuid4"`
}

type CreateSemesterRequest struct {
	SemesterName     string `json:"semester_name"      validate:"required,min=2,max=150"`
	SemesterCourseID string `json:"semester_course_id" validate:"required,uuid4"`
}

type CreateSyllabusRequest struct {
	SyllabusName       string `json:"syllabus_name"        validate:"required,min=2,max=150"`
	SyllabusSemesterID string `json:"syllabus_semester_id" validate:"required,uuid4"`
}
