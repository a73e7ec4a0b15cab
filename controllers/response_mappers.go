package controllers

import "minisocial/models"

func userToDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:          user.ID.String(),
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
		CreatedAt:   user.CreatedAt,
	}
}

func usersToDTOs(users *[]models.User) []UserDTO {
	dtos := make([]UserDTO, len(*users))
	for i := range *users {
		dtos[i] = userToDTO(&(*users)[i])
	}
	return dtos
}

func commentToDTO(comment *models.Comment) CommentDTO {
	return CommentDTO{
		UserID:      comment.UserID.String(),
		DisplayName: comment.Author.DisplayName,
		Username:    comment.Author.Username,
		Content:     comment.Content,
		CreatedAt:   comment.CreatedAt,
	}
}

func commentsToDTOs(comments *[]models.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(*comments))
	for i := range *comments {
		dtos[i] = commentToDTO(&(*comments)[i])
	}
	return dtos
}

func postToDTO(post *models.Post) PostDTO {
	likes := make([]string, len(post.Likes))
	for i := range post.Likes {
		likes[i] = post.Likes[i].UserID.String()
	}
	return PostDTO{
		ID:           post.ID.String(),
		UserID:       post.UserID.String(),
		DisplayName:  post.Author.DisplayName,
		Username:     post.Author.Username,
		Content:      post.Content,
		Likes:        likes,
		LikeCount:    len(post.Likes),
		Comments:     commentsToDTOs(&post.Comments),
		CommentCount: len(post.Comments),
		CreatedAt:    post.CreatedAt,
	}
}

func postsToDTOs(posts *[]models.Post) []PostDTO {
	dtos := make([]PostDTO, len(*posts))
	for i := range *posts {
		dtos[i] = postToDTO(&(*posts)[i])
	}
	return dtos
}
