package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/models"
	"gorm.io/gorm"
)

// pathID parses the :id route param. The routes only ever carry
// numeric primary keys; anything else never reaches the database.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// GetClasses lists all classes in display order.
func GetClasses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var classes []models.Class
		if err := db.Order("display_order, id").Find(&classes).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch classes"})
			return
		}
		c.JSON(200, gin.H{"classes": classes})
	}
}

// GetSubjects lists subjects under a class.
func GetSubjects(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var class models.Class
		if err := db.First(&class, "id = ?", id).Error; err != nil {
			c.JSON(404, gin.H{"error": "Class not found"})
			return
		}

		var subjects []models.Subject
		if err := db.Where("class_id = ?", class.ID).Find(&subjects).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch subjects"})
			return
		}
		c.JSON(200, gin.H{"subjects": subjects})
	}
}

// GetChapters lists chapters under a subject.
func GetChapters(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var subject models.Subject
		if err := db.First(&subject, "id = ?", id).Error; err != nil {
			c.JSON(404, gin.H{"error": "Subject not found"})
			return
		}

		var chapters []models.Chapter
		if err := db.Where("subject_id = ?", subject.ID).Find(&chapters).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch chapters"})
			return
		}
		c.JSON(200, gin.H{"chapters": chapters})
	}
}

// GetQuestions lists quiz questions under a chapter.
func GetQuestions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var chapter models.Chapter
		if err := db.First(&chapter, "id = ?", id).Error; err != nil {
			c.JSON(404, gin.H{"error": "Chapter not found"})
			return
		}

		var questions []models.Question
		if err := db.Where("chapter_id = ?", chapter.ID).Find(&questions).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch questions"})
			return
		}
		c.JSON(200, gin.H{"questions": questions})
	}
}

type ClassInput struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"displayOrder"`
}

// CreateClass adds a class (admin).
func CreateClass(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ClassInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		class := models.Class{Name: input.Name, DisplayOrder: input.DisplayOrder}
		if err := db.Create(&class).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create class"})
			return
		}
		c.JSON(201, class)
	}
}

// UpdateClass renames or reorders a class (admin).
func UpdateClass(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var class models.Class
		if err := db.First(&class, "id = ?", id).Error; err != nil {
			c.JSON(404, gin.H{"error": "Class not found"})
			return
		}

		var input ClassInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		class.Name = input.Name
		class.DisplayOrder = input.DisplayOrder
		if err := db.Save(&class).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update class"})
			return
		}
		c.JSON(200, class)
	}
}

// DeleteClass removes a class and its subtree (admin).
func DeleteClass(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		if err := db.Delete(&models.Class{}, "id = ?", id).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete class"})
			return
		}
		c.JSON(200, gin.H{"message": "Class deleted"})
	}
}

type SubjectInput struct {
	ClassID uint   `json:"classId" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

// CreateSubject adds a subject under a class (admin).
func CreateSubject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubjectInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var class models.Class
		if err := db.First(&class, "id = ?", input.ClassID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Class not found"})
			return
		}

		subject := models.Subject{ClassID: input.ClassID, Name: input.Name}
		if err := db.Create(&subject).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create subject"})
			return
		}
		c.JSON(201, subject)
	}
}

// UpdateSubject renames a subject (admin).
func UpdateSubject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var subject models.Subject
		if err := db.First(&subject, "id = ?", id).Error; err != nil {
			c.JSON(404, gin.H{"error": "Subject not found"})
			return
		}

		var input struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		subject.Name = input.Name
		if err := db.Save(&subject).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update subject"})
			return
		}
		c.JSON(200, subject)
	}
}

// DeleteSubject removes a subject and its subtree (admin).
func DeleteSubject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		if err := db.Delete(&models.Subject{}, "id = ?", id).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete subject"})
			return
		}
		c.JSON(200, gin.H{"message": "Subject deleted"})
	}
}

type ChapterInput struct {
	SubjectID uint   `json:"subjectId" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// CreateChapter adds a chapter under a subject (admin).
func CreateChapter(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ChapterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var subject models.Subject
		if err := db.First(&subject, "id = ?", input.SubjectID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Subject not found"})
			return
		}

		chapter := models.Chapter{SubjectID: input.SubjectID, Name: input.Name}
		if err := db.Create(&chapter).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create chapter"})
			return
		}
		c.JSON(201, chapter)
	}
}

// UpdateChapter renames a chapter (admin).
func UpdateChapter(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var chapter models.Chapter
		if err := db.First(&chapter, "id = ?", id).Error; err != nil {
			c.JSON(404, gin.H{"error": "Chapter not found"})
			return
		}

		var input struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		chapter.Name = input.Name
		if err := db.Save(&chapter).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update chapter"})
			return
		}
		c.JSON(200, chapter)
	}
}

// DeleteChapter removes a chapter and its questions (admin).
func DeleteChapter(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		if err := db.Delete(&models.Chapter{}, "id = ?", id).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete chapter"})
			return
		}
		c.JSON(200, gin.H{"message": "Chapter deleted"})
	}
}

type QuestionInput struct {
	ChapterID     uint   `json:"chapterId" binding:"required"`
	Text          string `json:"text" binding:"required"`
	OptionA       string `json:"optionA" binding:"required"`
	OptionB       string `json:"optionB" binding:"required"`
	OptionC       string `json:"optionC" binding:"required"`
	OptionD       string `json:"optionD" binding:"required"`
	CorrectOption string `json:"correctOption" binding:"required,oneof=A B C D"`
	Explanation   string `json:"explanation"`
}

// CreateQuestion adds a quiz question under a chapter (admin).
func CreateQuestion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuestionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var chapter models.Chapter
		if err := db.First(&chapter, "id = ?", input.ChapterID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Chapter not found"})
			return
		}

		question := models.Question{
			ChapterID:     input.ChapterID,
			Text:          input.Text,
			OptionA:       input.OptionA,
			OptionB:       input.OptionB,
			OptionC:       input.OptionC,
			OptionD:       input.OptionD,
			CorrectOption: models.QuestionOption(input.CorrectOption),
			Explanation:   input.Explanation,
		}
		if err := db.Create(&question).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create question"})
			return
		}
		c.JSON(201, question)
	}
}

// UpdateQuestion edits a quiz question (admin).
func UpdateQuestion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var question models.Question
		if err := db.First(&question, "id = ?", id).Error; err != nil {
			c.JSON(404, gin.H{"error": "Question not found"})
			return
		}

		var input QuestionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		question.ChapterID = input.ChapterID
		question.Text = input.Text
		question.OptionA = input.OptionA
		question.OptionB = input.OptionB
		question.OptionC = input.OptionC
		question.OptionD = input.OptionD
		question.CorrectOption = models.QuestionOption(input.CorrectOption)
		question.Explanation = input.Explanation

		if err := db.Save(&question).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update question"})
			return
		}
		c.JSON(200, question)
	}
}

// DeleteQuestion removes a quiz question (admin).
func DeleteQuestion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		if err := db.Delete(&models.Question{}, "id = ?", id).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete question"})
			return
		}
		c.JSON(200, gin.H{"message": "Question deleted"})
	}
}
