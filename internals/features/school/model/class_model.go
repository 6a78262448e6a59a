// file: internals/features/school/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Class struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MadrasahID uuid.UUID `json:"madrasah_id" gorm:"column:madrasah_id;type:uuid;not null;index" validate:"required"`
	Name       string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Level      *string   `json:"level,omitempty" gorm:"size:50"`
	Room       *string   `json:"room,omitempty" gorm:"size:50"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Teachers []ClassTeacher `json:"teachers,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}

func (Class) TableName() string { return "classes" }

// ClassTeacher: relasi kelas ↔ guru dalam satu madrasah.
// FK ke classes/teachers — saat restore, tabel ini harus masuk SETELAH
// classes dan teachers (dan dihapus SEBELUM keduanya).
type ClassTeacher struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MadrasahID uuid.UUID `json:"madrasah_id" gorm:"column:madrasah_id;type:uuid;not null;index" validate:"required"`
	ClassID    uuid.UUID `json:"class_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeacherID  uuid.UUID `json:"teacher_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsHomeroom bool      `json:"is_homeroom" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Class   *Class   `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID;constraint:OnDelete:CASCADE"`
	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID;constraint:OnDelete:CASCADE"`
}

func (ClassTeacher) TableName() string { return "class_teachers" }
