package pets

import "context"

// OwnerOf devuelve sólo el email del dueño; alcanza para los chequeos de
// permiso antes de borrar.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerEmail, nil
}
