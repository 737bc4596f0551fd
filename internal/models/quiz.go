package models

import "gorm.io/gorm"

// Class is a school class (1-10) or a competitive-exam track.
type Class struct {
	gorm.Model
	Name         string    `gorm:"column:name;unique;not null" json:"name"`
	DisplayOrder int       `gorm:"column:display_order;default:0" json:"displayOrder"`
	Subjects     []Subject `gorm:"constraint:OnDelete:CASCADE" json:"subjects,omitempty"`
}

type Subject struct {
	gorm.Model
	ClassID  uint      `gorm:"column:class_id;index;not null" json:"classId"`
	Name     string    `gorm:"column:name;not null" json:"name"`
	Chapters []Chapter `gorm:"constraint:OnDelete:CASCADE" json:"chapters,omitempty"`
}

type Chapter struct {
	gorm.Model
	SubjectID   uint       `gorm:"column:subject_id;index;not null" json:"subjectId"`
	Name        string     `gorm:"column:name;not null" json:"name"`
	MaterialURL string     `gorm:"column:material_url" json:"materialUrl"`
	Questions   []Question `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// QuestionOption identifies one of the four answer choices.
type QuestionOption string

const (
	OptionA QuestionOption = "A"
	OptionB QuestionOption = "B"
	OptionC QuestionOption = "C"
	OptionD QuestionOption = "D"
)

type Question struct {
	gorm.Model
	ChapterID     uint           `gorm:"column:chapter_id;index;not null" json:"chapterId"`
	Text          string         `gorm:"column:text;not null" json:"text"`
	OptionA       string         `gorm:"column:option_a;not null" json:"optionA"`
	OptionB       string         `gorm:"column:option_b;not null" json:"optionB"`
	OptionC       string         `gorm:"column:option_c;not null" json:"optionC"`
	OptionD       string         `gorm:"column:option_d;not null" json:"optionD"`
	CorrectOption QuestionOption `gorm:"column:correct_option;not null" json:"correctOption"`
	Explanation   string         `gorm:"column:explanation" json:"explanation,omitempty"`
}
