package api

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/melodia-school/melodia-back/internal/db"
	"github.com/melodia-school/melodia-back/internal/models"
	"github.com/melodia-school/melodia-back/pkg/response"
)

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, key string) uint {
	v, _ := strconv.ParseUint(c.Query(key), 10, 32)
	return uint(v)
}

// CreateSchool godoc
// @Summary      Create a school
// @Tags         registry
// @Accept       json
// @Produce      json
// @Param        body  body  models.School  true  "School"
// @Success      201   {object}  response.Body
// @Security     BearerAuth
// @Router       /schools [post]
func CreateSchool(c *gin.Context) {
	var s models.School
	if err := c.ShouldBindJSON(&s); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if err := db.CreateSchool(context.Background(), &s); err != nil {
		response.Internal(c, "failed to create school")
		return
	}
	response.Created(c, s)
}

// ListSchools godoc
// @Summary      List schools
// @Tags         registry
// @Produce      json
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /schools [get]
func ListSchools(c *gin.Context) {
	schools, err := db.ListSchools(context.Background())
	if err != nil {
		response.Internal(c, "failed to fetch schools")
		return
	}
	response.OK(c, schools)
}

// CreateStudent godoc
// @Summary      Register a student
// @Tags         registry
// @Accept       json
// @Produce      json
// @Param        body  body  models.Student  true  "Student"
// @Success      201   {object}  response.Body
// @Security     BearerAuth
// @Router       /students [post]
func CreateStudent(c *gin.Context) {
	var s models.Student
	if err := c.ShouldBindJSON(&s); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if err := db.CreateStudent(context.Background(), &s); err != nil {
		response.Internal(c, "failed to create student")
		return
	}
	response.Created(c, s)
}

// ListStudents godoc
// @Summary      List students
// @Tags         registry
// @Produce      json
// @Param        school_id  query  int  false  "Filter by school"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /students [get]
func ListStudents(c *gin.Context) {
	students, err := db.ListStudents(context.Background(), queryUint(c, "school_id"))
	if err != nil {
		response.Internal(c, "failed to fetch students")
		return
	}
	response.OK(c, students)
}

// GetStudent godoc
// @Summary      Get a student
// @Tags         registry
// @Produce      json
// @Param        id  path  int  true  "Student ID"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Security     BearerAuth
// @Router       /students/{id} [get]
func GetStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	s, err := db.GetStudent(context.Background(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "student not found")
			return
		}
		response.Internal(c, "failed to fetch student")
		return
	}
	response.OK(c, s)
}

// UpdateStudent godoc
// @Summary      Update a student
// @Tags         registry
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Student ID"
// @Param        body  body  models.Student  true  "Student"
// @Success      200   {object}  response.Body
// @Security     BearerAuth
// @Router       /students/{id} [put]
func UpdateStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var s models.Student
	if err := c.ShouldBindJSON(&s); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	s.ID = id
	if err := db.UpdateStudent(context.Background(), &s); err != nil {
		response.Internal(c, "failed to update student")
		return
	}
	response.OK(c, s)
}

// DeleteStudent godoc
// @Summary      Delete a student
// @Tags         registry
// @Produce      json
// @Param        id  path  int  true  "Student ID"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /students/{id} [delete]
func DeleteStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := db.DeleteStudent(context.Background(), id); err != nil {
		response.Internal(c, "failed to delete student")
		return
	}
	response.OK(c, gin.H{"message": "student deleted"})
}

// CreateTeacher godoc
// @Summary      Register a teacher
// @Tags         registry
// @Accept       json
// @Produce      json
// @Param        body  body  models.Teacher  true  "Teacher"
// @Success      201   {object}  response.Body
// @Security     BearerAuth
// @Router       /teachers [post]
func CreateTeacher(c *gin.Context) {
	var t models.Teacher
	if err := c.ShouldBindJSON(&t); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if err := db.CreateTeacher(context.Background(), &t); err != nil {
		response.Internal(c, "failed to create teacher")
		return
	}
	response.Created(c, t)
}

// ListTeachers godoc
// @Summary      List teachers
// @Tags         registry
// @Produce      json
// @Param        school_id  query  int  false  "Filter by school"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /teachers [get]
func ListTeachers(c *gin.Context) {
	teachers, err := db.ListTeachers(context.Background(), queryUint(c, "school_id"))
	if err != nil {
		response.Internal(c, "failed to fetch teachers")
		return
	}
	response.OK(c, teachers)
}

// GetTeacher godoc
// @Summary      Get a teacher
// @Tags         registry
// @Produce      json
// @Param        id  path  int  true  "Teacher ID"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Security     BearerAuth
// @Router       /teachers/{id} [get]
func GetTeacher(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	t, err := db.GetTeacher(context.Background(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "teacher not found")
			return
		}
		response.Internal(c, "failed to fetch teacher")
		return
	}
	response.OK(c, t)
}

// UpdateTeacher godoc
// @Summary      Update a teacher
// @Tags         registry
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Teacher ID"
// @Param        body  body  models.Teacher  true  "Teacher"
// @Success      200   {object}  response.Body
// @Security     BearerAuth
// @Router       /teachers/{id} [put]
func UpdateTeacher(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var t models.Teacher
	if err := c.ShouldBindJSON(&t); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	t.ID = id
	if err := db.UpdateTeacher(context.Background(), &t); err != nil {
		response.Internal(c, "failed to update teacher")
		return
	}
	response.OK(c, t)
}

// DeleteTeacher godoc
// @Summary      Delete a teacher
// @Tags         registry
// @Produce      json
// @Param        id  path  int  true  "Teacher ID"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /teachers/{id} [delete]
func DeleteTeacher(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := db.DeleteTeacher(context.Background(), id); err != nil {
		response.Internal(c, "failed to delete teacher")
		return
	}
	response.OK(c, gin.H{"message": "teacher deleted"})
}
