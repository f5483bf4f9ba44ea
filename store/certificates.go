package store

import (
	"strings"

	"skillsync/models"
)

// AllCertificates returns every issued certificate
func (s *Store) AllCertificates() []models.Certificate {
	return getList(s, keyCertificates, []models.Certificate{})
}

// SaveCertificates replaces the certificate collection
func (s *Store) SaveCertificates(certs []models.Certificate) error {
	return s.write(keyCertificates, certs)
}

// Certificates returns the certificates issued to one user
func (s *Store) Certificates(email string) []models.Certificate {
	var out []models.Certificate
	for _, c := range s.AllCertificates() {
		if strings.EqualFold(c.UserEmail, email) {
			out = append(out, c)
		}
	}
	return out
}

// AddCertificate issues a certificate. At most one certificate exists per
// (userEmail, courseId): re-issuing returns the existing one unchanged.
func (s *Store) AddCertificate(cert models.Certificate) (models.Certificate, error) {
	certs := s.AllCertificates()
	for _, existing := range certs {
		if strings.EqualFold(existing.UserEmail, cert.UserEmail) && existing.CourseID == cert.CourseID {
			return existing, nil
		}
	}
	certs = append(certs, cert)
	return cert, s.SaveCertificates(certs)
}
