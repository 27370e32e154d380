package service

import (
	"context"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/pkg/apperror"
	"github.com/avillarama/resto-api/pkg/pagination"
	"github.com/avillarama/resto-api/pkg/utils"
)

// MemberService handles member-related operations
type MemberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// CreateMemberInput represents the create member input
type CreateMemberInput struct {
	Name      string
	ContactNo string
}

// CreateMember registers a new member with a generated 12-digit identifier
func (s *MemberService) CreateMember(ctx context.Context, input *CreateMemberInput) (*entity.Member, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.ContactNo == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "contact_no", Message: "Contact number is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	member := &entity.Member{
		MemberID:  utils.GenerateMemberID(),
		Name:      input.Name,
		ContactNo: input.ContactNo,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// GetMember retrieves a member by ID
func (s *MemberService) GetMember(ctx context.Context, id string) (*entity.Member, error) {
	if !utils.IsValidMemberID(id) {
		return nil, apperror.NewBadRequestError("Invalid member ID format")
	}

	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFoundError("Member")
	}
	return member, nil
}

// ListMembers lists members with optional name search
func (s *MemberService) ListMembers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Member], error) {
	members, total, err := s.memberRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(members, pag), nil
}

// UpdateMemberInput represents the update member input
type UpdateMemberInput struct {
	ID        string
	Name      *string
	ContactNo *string
}

// UpdateMember updates a member's details
func (s *MemberService) UpdateMember(ctx context.Context, input *UpdateMemberInput) (*entity.Member, error) {
	member, err := s.GetMember(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.ContactNo != nil {
		member.ContactNo = *input.ContactNo
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// DeleteMember deletes a member
func (s *MemberService) DeleteMember(ctx context.Context, id string) error {
	if _, err := s.GetMember(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.Delete(ctx, id)
}
