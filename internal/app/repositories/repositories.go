package repositories

// Repositories bundles every repository for explicit construction in the
// composition root.
type Repositories struct {
	Lecture             *LectureRepository
	Student             *StudentRepository
	Instructor          *InstructorRepository
	Enrollment          *EnrollmentRepository
	LectureStudentCount *LectureStudentCountRepository
}

// NewRepositories creates all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		Lecture:             NewLectureRepository(),
		Student:             NewStudentRepository(),
		Instructor:          NewInstructorRepository(),
		Enrollment:          NewEnrollmentRepository(),
		LectureStudentCount: NewLectureStudentCountRepository(),
	}
}
