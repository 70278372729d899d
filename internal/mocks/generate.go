package mocks

//go:generate mockery --name SalesReader --srcpkg github.com/aevon-lab/sales-analytics/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name SalesStore --srcpkg github.com/aevon-lab/sales-analytics/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
