package handler

import (
	"net/http"

	"github.com/bagdasarian/position-helper/internal/domain"
)

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	views, err := h.memberService.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := MemberListResponse{Members: make([]MemberResponse, 0, len(views))}
	for _, v := range views {
		resp.Members = append(resp.Members, memberViewToHTTP(v))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ActiveMembers(w http.ResponseWriter, r *http.Request) {
	names, err := h.memberService.ActiveMembers(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ActiveMembersResponse{Members: names})
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	member, notice, err := h.memberService.Add(r.Context(), req.Name, req.Memo, req.IsActive)
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := MemberResultResponse{Member: domainMemberToHTTP(member), Notice: domainNoticeToHTTP(notice)}
	resp.Member.InTable = true
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	var req MemberNameRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	notice, err := h.memberService.Delete(r.Context(), req.Name)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NoticeOnlyResponse{Notice: domainNoticeToHTTP(notice)})
}

func (h *Handler) SetIsActive(w http.ResponseWriter, r *http.Request) {
	var req SetIsActiveRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.IsActive == nil {
		h.handleError(w, domain.NewBadRequestError("is_active is required"))
		return
	}

	member, notice, err := h.memberService.SetActive(r.Context(), req.Name, *req.IsActive)
	h.writeMemberResult(w, member, notice, err)
}

func (h *Handler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	var req MemberNameRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	member, notice, err := h.memberService.Toggle(r.Context(), req.Name)
	h.writeMemberResult(w, member, notice, err)
}

func (h *Handler) SaveMemo(w http.ResponseWriter, r *http.Request) {
	var req MemoRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	member, notice, err := h.memberService.SaveMemo(r.Context(), req.Name, req.Memo)
	h.writeMemberResult(w, member, notice, err)
}

func (h *Handler) writeMemberResult(w http.ResponseWriter, member *domain.Member, notice *domain.Notice, err error) {
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MemberResultResponse{
		Member: domainMemberToHTTP(member),
		Notice: domainNoticeToHTTP(notice),
	})
}
