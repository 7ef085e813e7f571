package api

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/melodia-school/melodia-back/internal/db"
	"github.com/melodia-school/melodia-back/internal/models"
	"github.com/melodia-school/melodia-back/pkg/response"
)

const dateLayout = "2006-01-02"

func queryDate(c *gin.Context, key string) (time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		response.BadRequest(c, "invalid "+key+" date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

// CreateLesson godoc
// @Summary      Record a lesson
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Param        body  body  models.Lesson  true  "Lesson"
// @Success      201   {object}  response.Body
// @Security     BearerAuth
// @Router       /lessons [post]
func CreateLesson(c *gin.Context) {
	var l models.Lesson
	if err := c.ShouldBindJSON(&l); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if err := db.CreateLesson(context.Background(), &l); err != nil {
		response.Internal(c, "failed to create lesson")
		return
	}
	response.Created(c, l)
}

// GetLesson godoc
// @Summary      Get a lesson
// @Tags         lessons
// @Produce      json
// @Param        id  path  int  true  "Lesson ID"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Security     BearerAuth
// @Router       /lessons/{id} [get]
func GetLesson(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	l, err := db.GetLesson(context.Background(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "lesson not found")
			return
		}
		response.Internal(c, "failed to fetch lesson")
		return
	}
	response.OK(c, l)
}

// UpdateLesson godoc
// @Summary      Update a lesson
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Param        id    path  int            true  "Lesson ID"
// @Param        body  body  models.Lesson  true  "Lesson"
// @Success      200   {object}  response.Body
// @Security     BearerAuth
// @Router       /lessons/{id} [put]
func UpdateLesson(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var l models.Lesson
	if err := c.ShouldBindJSON(&l); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	l.ID = id
	if err := db.UpdateLesson(context.Background(), &l); err != nil {
		response.Internal(c, "failed to update lesson")
		return
	}
	response.OK(c, l)
}

// DeleteLesson godoc
// @Summary      Delete a lesson
// @Tags         lessons
// @Produce      json
// @Param        id  path  int  true  "Lesson ID"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /lessons/{id} [delete]
func DeleteLesson(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := db.DeleteLesson(context.Background(), id); err != nil {
		response.Internal(c, "failed to delete lesson")
		return
	}
	response.OK(c, gin.H{"message": "lesson deleted"})
}

// ListStudentLessons godoc
// @Summary      List a student's lessons
// @Tags         lessons
// @Produce      json
// @Param        id    path   int     true   "Student ID"
// @Param        from  query  string  false  "From date (YYYY-MM-DD)"
// @Param        to    query  string  false  "To date (YYYY-MM-DD)"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /students/{id}/lessons [get]
func ListStudentLessons(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}
	lessons, err := db.ListLessonsForStudent(context.Background(), id, from, to)
	if err != nil {
		response.Internal(c, "failed to fetch lessons")
		return
	}
	response.OK(c, lessons)
}

// ListTeacherLessons godoc
// @Summary      List a teacher's lessons
// @Tags         lessons
// @Produce      json
// @Param        id    path   int     true   "Teacher ID"
// @Param        from  query  string  false  "From date (YYYY-MM-DD)"
// @Param        to    query  string  false  "To date (YYYY-MM-DD)"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /teachers/{id}/lessons [get]
func ListTeacherLessons(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}
	lessons, err := db.ListLessonsForTeacher(context.Background(), id, from, to)
	if err != nil {
		response.Internal(c, "failed to fetch lessons")
		return
	}
	response.OK(c, lessons)
}
