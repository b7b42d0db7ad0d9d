package mocks

//go:generate mockery --name RangeStore --srcpkg github.com/aevon-lab/hashsplit/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
