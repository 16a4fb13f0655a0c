package services

import "github.com/mdhaziqomar/memories/repositories"

type Container struct {
	Auth   AuthService
	User   UserService
	Event  EventService
	Media  MediaService
	Social SocialService
}

func NewContainer(repos repositories.Container) *Container {
	return &Container{
		Auth:   NewAuthService(repos.TxManager, repos.Users, repos.InviteCodes),
		User:   NewUserService(repos.Users),
		Event:  NewEventService(repos.Events),
		Media:  NewMediaService(repos.Media, repos.Events, repos.Likes, repos.Tags, ImagingThumbnailer{}),
		Social: NewSocialService(repos.Media, repos.Users, repos.Likes, repos.Tags),
	}
}
