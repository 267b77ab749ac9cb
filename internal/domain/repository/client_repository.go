package repository

import "github.com/jhoicas/FreelanceCRM-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// Las lecturas retornan (nil, nil) cuando el registro no existe.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByUserAndID(userID, id string) (*entity.Client, error)
	// ListByUser lista los clientes del usuario, ordenados por created_at descendente.
	ListByUser(userID string, limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
