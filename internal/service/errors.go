package service

import "errors"

var (
    // ErrNotFound 不存在或无权访问（对外不区分，避免泄露存在性）
    ErrNotFound = errors.New("not found or access denied")
    // ErrInvalidTag 标签不在目录内或重复
    ErrInvalidTag = errors.New("invalid tag")
    // ErrEmailTaken 该邮箱在该角色下已注册
    ErrEmailTaken = errors.New("email already registered for this role")
    // ErrBadCredentials 账号或密码错误
    ErrBadCredentials = errors.New("invalid email or password")
)
