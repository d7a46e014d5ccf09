package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func (s *CommentService) CreateComment(videoId, userId int64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.RequestErr.WithMessage("Comment content must not be empty")
	}
	if _, err := videodb.GetVideo(s.ctx, videoId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, err
	}

	now := utils.NowString()
	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(videoId, page, limit int64) ([]*model.Comment, int64, error) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	if _, err := videodb.GetVideo(s.ctx, videoId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, 0, err
	}
	return db.GetVideoCommentListByPart(s.ctx, videoId, page, limit)
}

func (s *CommentService) UpdateComment(commentId, userId int64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.RequestErr.WithMessage("Comment content must not be empty")
	}
	comment, err := db.GetCommentInfo(s.ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Comment not found")
		}
		return nil, err
	}
	if err := utils.RequireOwner(userId, comment.UserId, "comment"); err != nil {
		return nil, err
	}

	comment.Content = content
	comment.UpdatedAt = utils.NowString()
	if err := db.UpdateCommentContent(s.ctx, commentId, comment.Content, comment.UpdatedAt); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(commentId, userId int64) error {
	comment, err := db.GetCommentInfo(s.ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("Comment not found")
		}
		return err
	}
	if err := utils.RequireOwner(userId, comment.UserId, "comment"); err != nil {
		return err
	}

	if err := db.DeleteComment(s.ctx, commentId); err != nil {
		return err
	}
	// likes pointing at the comment would otherwise survive as orphans
	return db.DeleteLikesOfTarget(s.ctx, model.LikeTargetComment, commentId)
}
