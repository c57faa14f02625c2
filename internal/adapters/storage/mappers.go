package storage

import (
	"github.com/stephan-zhuchen/fastgit/internal/domain"
)

// recentModelToDomain converts a RecentModel (GORM) to domain.RepositoryIdentity
func recentModelToDomain(m RecentModel) domain.RepositoryIdentity {
	return domain.RepositoryIdentity{
		LastOpened: m.LastOpened,
		Name:       m.Name,
		Path:       m.Path,
		RemoteURL:  m.RemoteURL,
	}
}

// domainToRecentModel converts a domain.RepositoryIdentity to RecentModel (GORM)
func domainToRecentModel(r domain.RepositoryIdentity, position int) RecentModel {
	return RecentModel{
		LastOpened: r.LastOpened,
		Name:       r.Name,
		Path:       r.Path,
		Position:   position,
		RemoteURL:  r.RemoteURL,
	}
}

// tokenModelToDomain converts an AccessTokenModel to an inactive domain.AccessGrant
func tokenModelToDomain(m AccessTokenModel) domain.AccessGrant {
	return domain.AccessGrant{
		CreatedAt: m.CreatedAt,
		Path:      m.Path,
		Token:     m.Token,
	}
}
